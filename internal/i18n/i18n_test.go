package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslate(t *testing.T) {
	tr, err := NewI18n(language.English)
	require.NoError(t, err)

	assert.Equal(t, "Database error", tr.Translate("ErrorDatabase", "en", nil))
	assert.Equal(t, "数据库错误", tr.Translate("ErrorDatabase", "zh", nil))
	// unsupported languages fall back to the default
	assert.Equal(t, "Message sent", tr.Translate("SuccessMessageSent", "fr", nil))
	// unknown ids come back unchanged
	assert.Equal(t, "NoSuchMessage", tr.Translate("NoSuchMessage", "en", nil))
	assert.Equal(t, "Only image files up to 10 bytes are accepted",
		tr.Translate("ErrorInvalidImage", "en", map[string]any{"MaxSize": 10}))
}

func TestLoadTranslationsOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`SuccessMessageSent = "Sent!"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	tr, err := NewI18n(language.English)
	require.NoError(t, err)
	require.NoError(t, tr.LoadTranslations(dir))
	assert.Equal(t, "Sent!", tr.Translate("SuccessMessageSent", "en", nil))

	assert.Error(t, tr.LoadTranslations(filepath.Join(dir, "missing")))
}

func TestLanguageFromRequest(t *testing.T) {
	cases := []struct {
		xlang, accept, want string
	}{
		{"", "", cnst.LangEN},
		{"zh", "", cnst.LangZH},
		{"zh-CN", "en", cnst.LangZH},
		{"", "zh-TW,zh;q=0.9,en;q=0.8", cnst.LangZH},
		{"", "en-ZA,en;q=0.9", cnst.LangEN},
		{"", "fr-FR", cnst.LangEN},
		{"!!", "", cnst.LangEN},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.xlang != "" {
			r.Header.Set(cnst.XLang, tc.xlang)
		}
		if tc.accept != "" {
			r.Header.Set("Accept-Language", tc.accept)
		}
		assert.Equal(t, tc.want, LanguageFromRequest(r), "%s|%s", tc.xlang, tc.accept)
	}
}

func TestErrorWithCode(t *testing.T) {
	assert.Equal(t, "Invalid credentials", ErrInvalidCredentials.Error())
	assert.Equal(t, ErrorUnauthorized, ErrInvalidCredentials.GetCode())

	withParam := ErrInvalidImage.WithParam("MaxSize", 5)
	assert.Equal(t, "Only image files up to 5 bytes are accepted", withParam.Error())
	assert.Empty(t, ErrInvalidImage.Data)
}

func serve(t *testing.T, lang string, h gin.HandlerFunc) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		if lang != "" {
			c.Set(cnst.CtxKeyLang, lang)
		}
		h(c)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondWithError(t *testing.T) {
	code, body := serve(t, "", func(c *gin.Context) { RespondWithError(c, ErrDuplicateStudent) })
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Student number or email already exists", body["message"])

	code, body = serve(t, cnst.LangZH, func(c *gin.Context) { RespondWithError(c, ErrInvalidAdminCredentials) })
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "管理员凭据无效", body["message"])

	code, body = serve(t, "", func(c *gin.Context) {
		RespondWithError(c, fmt.Errorf("register 2024001: %w", ErrDuplicateStudent))
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Student number or email already exists", body["message"])

	code, body = serve(t, "", func(c *gin.Context) { RespondWithError(c, ErrInvalidImage.WithParam("MaxSize", 1024)) })
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Only image files up to 1024 bytes are accepted", body["message"])

	code, body = serve(t, "", func(c *gin.Context) { RespondWithError(c, New("ErrorFetchUsers")) })
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to fetch users", body["message"])

	code, body = serve(t, "", func(c *gin.Context) { RespondWithError(c, errors.New("driver: bad connection")) })
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Database error", body["message"])
}

func TestSuccessResponse(t *testing.T) {
	code, body := serve(t, "", func(c *gin.Context) {
		Success(SuccessReportSubmit).With("reportId", 7).Send(c)
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Report submitted successfully", body["message"])
	assert.Equal(t, float64(7), body["reportId"])

	_, body = serve(t, "", func(c *gin.Context) {
		OK().With("reports", []string{}).Send(c)
	})
	assert.Equal(t, true, body["success"])
	_, hasMessage := body["message"]
	assert.False(t, hasMessage)
	assert.Equal(t, []any{}, body["reports"])
}
