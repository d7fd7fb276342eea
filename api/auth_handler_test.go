package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

func addUser(t *testing.T, a *testAPI, email, password string, role auth.Role) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, a.db.UserRepo().Add(context.Background(), &models.User{Email: email, Password: hash, Role: role}))
}

func TestLoginSessionLogout(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)
	addUser(t, a, "owner@example.com", "correct horse", auth.RoleAdmin)

	rec := a.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "owner@example.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "nobody@example.com", "password": "correct horse"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "Owner@Example.com", "password": "correct horse"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeObject(t, rec)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "admin", body["user"].(map[string]any)["role"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	assert.Equal(t, DefaultSessionCookie, session.Name)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "owner@example.com", decodeObject(t, rec)["email"])

	// the cookie alone opens admin routes
	req = httptest.NewRequest(http.MethodGet, "/api/admin/skills", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodPost, "/api/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, DefaultSessionCookie, cleared[0].Name)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)

	rec = a.do(http.MethodGet, "/api/auth/session", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAllowsNonAdminButAdminRoutesDoNot(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	rec := a.do(http.MethodGet, "/api/auth/session", nil, a.userToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user", decodeObject(t, rec)["role"])

	rec = a.do(http.MethodGet, "/api/admin/stats", nil, a.userToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeUploader struct {
	name        string
	contentType string
	data        []byte
}

func (u *fakeUploader) Upload(_ context.Context, name, contentType string, size int64, body io.Reader) (services.Upload, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return services.Upload{}, err
	}
	u.name, u.contentType, u.data = name, contentType, data
	return services.Upload{
		Key:         "uploads/fixed.png",
		URL:         "https://cdn.example.com/uploads/fixed.png",
		ContentType: contentType,
		Size:        size,
	}, nil
}

func uploadRequest(t *testing.T, token, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadStoresImage(t *testing.T) {
	uploader := &fakeUploader{}
	a := newTestAPI(t, Dependencies{Uploader: uploader}, nil)

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, uploadRequest(t, a.adminToken, "avatar.png", "image/png", []byte("png-bytes")))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"url":"https://cdn.example.com/uploads/fixed.png"}`, rec.Body.String())
	assert.Equal(t, "avatar.png", uploader.name)
	assert.Equal(t, "image/png", uploader.contentType)
	assert.Equal(t, []byte("png-bytes"), uploader.data)

	rec = httptest.NewRecorder()
	a.router.ServeHTTP(rec, uploadRequest(t, a.adminToken, "notes.txt", "text/plain", []byte("hi")))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = httptest.NewRecorder()
	a.router.ServeHTTP(rec, uploadRequest(t, a.adminToken, "huge.png", "image/png", bytes.Repeat([]byte("x"), maxUploadBytes+1)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadWithoutStorage(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, uploadRequest(t, a.adminToken, "avatar.png", "image/png", []byte("png-bytes")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"upload storage is not configured"}`, rec.Body.String())
}

func TestAdminPagesServeBuild(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>admin</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	a := newTestAPI(t, Dependencies{}, map[string]string{"ADMIN_STATIC_DIR": dir})

	rec := a.do(http.MethodGet, "/admin/login", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")

	rec = a.do(http.MethodGet, "/admin/articles/new", nil, a.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html>admin</html>")

	rec = a.do(http.MethodGet, "/admin/app.js", nil, a.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = a.do(http.MethodGet, "/admin/articles/new", nil, "")
	assert.Equal(t, http.StatusFound, rec.Code)

	// the login page must be able to load its bundle before signing in
	rec = a.do(http.MethodGet, "/admin/app.js", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = a.do(http.MethodGet, "/admin/index.html", nil, "")
	assert.Equal(t, http.StatusFound, rec.Code)
}
