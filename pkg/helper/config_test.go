package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCfgPath_Lookup(t *testing.T) {
	tests := []struct {
		name  string
		files []string // created under the working directory
		arg   string
		want  string // relative to the working directory; absolute values are compared as-is
	}{
		{
			name:  "working directory",
			files: []string{"apiserver.yaml"},
			arg:   "apiserver.yaml",
			want:  "apiserver.yaml",
		},
		{
			name:  "configs directory",
			files: []string{"configs/apiserver.yaml"},
			arg:   "apiserver.yaml",
			want:  "configs/apiserver.yaml",
		},
		{
			name:  "working directory wins over configs",
			files: []string{"apiserver.yaml", "configs/apiserver.yaml"},
			arg:   "apiserver.yaml",
			want:  "apiserver.yaml",
		},
		{
			name:  "relative subpath under configs",
			files: []string{"configs/prod/apiserver.yaml"},
			arg:   "prod/apiserver.yaml",
			want:  "configs/prod/apiserver.yaml",
		},
		{
			name:  "system directory fallback",
			files: []string{"configs/other.yaml"},
			arg:   "apiserver.yaml",
			want:  "/etc/luhambo/apiserver.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wd := t.TempDir()
			t.Chdir(wd)
			for _, f := range tt.files {
				require.NoError(t, os.MkdirAll(filepath.Dir(f), 0o755))
				require.NoError(t, os.WriteFile(f, []byte("server:\n  port: 5000\n"), 0o644))
			}

			got := GetCfgPath(tt.arg)
			if filepath.IsAbs(tt.want) {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.True(t, filepath.IsAbs(got), got)
			assert.Equal(t, realPath(t, filepath.Join(wd, tt.want)), realPath(t, got))
		})
	}
}

func TestGetCfgPath_Absolute(t *testing.T) {
	// absolute paths are trusted even when missing
	missing := filepath.Join(t.TempDir(), "nowhere", "apiserver.yaml")
	assert.Equal(t, missing, GetCfgPath(missing))
}

func TestGetCfgPath_Empty(t *testing.T) {
	assert.PanicsWithValue(t, "filename cannot be empty", func() { GetCfgPath("") })
}

// realPath resolves symlinked temp dirs such as /tmp on macOS
func realPath(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return r
}
