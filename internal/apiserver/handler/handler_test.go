package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestUsersSearch(t *testing.T) {
	r := newTestRouter(t, newMemoryDB(t), testServerConfig(t))
	for _, no := range []string{"2025100", "2025200", "3000300"} {
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/register", registerBody(no, no+"@uni.ac.za")).Code)
	}

	numbers := func(query string) []string {
		w := do(r, http.MethodGet, "/api/users"+query, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var out []string
		for _, u := range gjson.Get(w.Body.String(), "users").Array() {
			assert.False(t, u.Get("password").Exists())
			out = append(out, u.Get("studentNo").String())
		}
		return out
	}

	assert.Equal(t, []string{"3000300", "2025200", "2025100"}, numbers(""))
	assert.Equal(t, []string{"2025200", "2025100"}, numbers("?search=2025"))
	assert.Equal(t, []string{"3000300"}, numbers("?search=Thandi+3000"))
	assert.Empty(t, numbers("?search=zzz"))
}

func TestStats(t *testing.T) {
	r := newTestRouter(t, newMemoryDB(t), testServerConfig(t))
	w := do(r, http.MethodPost, "/api/register", registerBody("2025300", "s@uni.ac.za"))
	sid := gjson.Get(w.Body.String(), "userId").Uint()

	a := submit(t, r, submitBody(sid, "Building A", "Plumbing", ""))
	b := submit(t, r, submitBody(sid, "Building A", "Electrical", ""))
	submit(t, r, submitBody(sid, "Building B", "Other", ""))
	submit(t, r, submitBody(sid+1, "Building B", "Other", ""))

	do(r, http.MethodPut, fmt.Sprintf("/api/reports/%d", a), map[string]string{"status": "completed", "priority": "Normal"})
	do(r, http.MethodPut, fmt.Sprintf("/api/reports/%d", b), map[string]string{"status": "in-progress", "priority": "Normal"})

	student := do(r, http.MethodGet, fmt.Sprintf("/api/stats/student/%d", sid), nil)
	require.Equal(t, http.StatusOK, student.Code)
	assert.JSONEq(t, `{"totalReports":3,"pendingReports":1,"inProgressReports":1,"completedReports":1}`,
		gjson.Get(student.Body.String(), "stats").Raw)

	none := do(r, http.MethodGet, "/api/stats/student/777", nil)
	assert.JSONEq(t, `{"totalReports":0,"pendingReports":0,"inProgressReports":0,"completedReports":0}`,
		gjson.Get(none.Body.String(), "stats").Raw)

	admin := do(r, http.MethodGet, "/api/stats/admin", nil)
	require.Equal(t, http.StatusOK, admin.Code)
	assert.JSONEq(t, `{"totalReports":4,"pendingReports":2,"inProgressReports":1,"completedToday":1,"totalUsers":1}`,
		gjson.Get(admin.Body.String(), "stats").Raw)
}

func TestHealth(t *testing.T) {
	ok := do(newTestRouter(t, newMemoryDB(t), testServerConfig(t)), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, "ok", gjson.Get(ok.Body.String(), "status").String())

	down := do(newTestRouter(t, &failingDB{err: errors.New("closed")}, testServerConfig(t)), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusInternalServerError, down.Code)
	assert.False(t, gjson.Get(down.Body.String(), "success").Bool())
}

func TestOpenAPIDocument(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)
	for _, p := range []string{"/register", "/login/student", "/login/admin", "/reports", "/reports/student/{studentId}",
		"/reports/{id}", "/reports/{id}/image", "/chat/{reportId}", "/users", "/stats/student/{studentId}", "/stats/admin"} {
		assert.NotNil(t, doc.Paths.Value(p), p)
	}

	w := do(newTestRouter(t, newMemoryDB(t), testServerConfig(t)), http.MethodGet, "/api/openapi.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3.0.3", gjson.Get(w.Body.String(), "openapi").String())
	assert.Equal(t, "/api", gjson.Get(w.Body.String(), "servers.0.url").String())
	chat, ok := gjson.Get(w.Body.String(), "paths").Map()["/chat/{reportId}"]
	require.True(t, ok)
	assert.True(t, chat.Get("post").Exists())
}

func TestStorageFailures(t *testing.T) {
	r := newTestRouter(t, &failingDB{err: errors.New("disk I/O error")}, testServerConfig(t))

	cases := []struct {
		method, path string
		body         any
		code         int
		message      string
	}{
		{http.MethodPost, "/api/register", registerBody("1", "x@y"), http.StatusInternalServerError, "Database error"},
		{http.MethodPost, "/api/login/student", map[string]string{"identifier": "1", "password": "p"}, http.StatusInternalServerError, "Database error"},
		{http.MethodPost, "/api/login/admin", map[string]string{"username": "a", "password": "p"}, http.StatusInternalServerError, "Database error"},
		{http.MethodPost, "/api/reports", submitBody(1, "Building A", "Other", ""), http.StatusInternalServerError, "Failed to submit report"},
		{http.MethodGet, "/api/reports", nil, http.StatusInternalServerError, "Failed to fetch reports"},
		{http.MethodGet, "/api/reports/student/1", nil, http.StatusInternalServerError, "Failed to fetch reports"},
		{http.MethodPut, "/api/reports/1", map[string]string{"status": "completed"}, http.StatusInternalServerError, "Failed to update report"},
		{http.MethodGet, "/api/chat/1", nil, http.StatusInternalServerError, "Failed to fetch messages"},
		{http.MethodPost, "/api/chat/1", map[string]any{"senderType": "admin", "senderId": 1, "message": "hi"}, http.StatusInternalServerError, "Failed to send message"},
		{http.MethodGet, "/api/users", nil, http.StatusInternalServerError, "Failed to fetch users"},
		{http.MethodGet, "/api/stats/student/1", nil, http.StatusInternalServerError, "Failed to fetch stats"},
		{http.MethodGet, "/api/stats/admin", nil, http.StatusInternalServerError, "Failed to fetch stats"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.code, w.Code)
			assert.False(t, gjson.Get(w.Body.String(), "success").Bool())
			assert.Equal(t, tc.message, gjson.Get(w.Body.String(), "message").String())
		})
	}
}
