package server

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wedding_backend/internals/configs"
	"wedding_backend/internals/databases/dbtest"
)

func testConfig(t *testing.T) *configs.Config {
	return &configs.Config{
		UploadDir:      t.TempDir(),
		UploadMaxBytes: 1 << 20,
		StaticDir:      filepath.Join(t.TempDir(), "missing"),
		CORSOrigins:    "*",
	}
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, []byte, http.Header) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header
}

func jsonMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return out
}

func uploadRequest(t *testing.T, name string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if name != "" {
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	app := NewApp(dbtest.Open(t), testConfig(t), zap.NewNop())

	status, body, hdr := send(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, status)
	out := jsonMap(t, body)
	assert.Equal(t, "ok", out["status"])
	assert.NotEmpty(t, out["timestamp"])
	assert.NotEmpty(t, hdr.Get(fiber.HeaderXRequestID))
}

func TestUnknownAPIRoute(t *testing.T) {
	app := NewApp(dbtest.Open(t), testConfig(t), zap.NewNop())

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		status, body, _ := send(t, app, httptest.NewRequest(method, "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "API endpoint not found", jsonMap(t, body)["error"])
	}
}

func TestSPAFallback(t *testing.T) {
	cfg := testConfig(t)
	cfg.StaticDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "index.html"), []byte("<html>spa</html>"), 0o644))
	app := NewApp(dbtest.Open(t), cfg, zap.NewNop())

	status, body, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/invitation/test-wedding-123", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "spa")
}

func TestUploadAndServe(t *testing.T) {
	cfg := testConfig(t)
	app := NewApp(dbtest.Open(t), cfg, zap.NewNop())

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	status, body, _ := send(t, app, uploadRequest(t, "photo.png", img.Bytes()))
	require.Equal(t, http.StatusOK, status, string(body))
	raw := jsonMap(t, body)["url"].(string)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Regexp(t, `^/uploads/\d+-\d+\.png$`, u.Path)

	status, served, _ := send(t, app, httptest.NewRequest(http.MethodGet, u.Path, nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, img.Bytes(), served)
}

func TestUploadRejects(t *testing.T) {
	app := NewApp(dbtest.Open(t), testConfig(t), zap.NewNop())

	cases := map[string]*http.Request{
		"no file":   uploadRequest(t, "", nil),
		"not image": uploadRequest(t, "notes.png", []byte("plain text")),
		"too large": uploadRequest(t, "big.png", bytes.Repeat([]byte{0x89}, 1<<20+1)),
	}
	for name, req := range cases {
		status, body, _ := send(t, app, req)
		assert.Equal(t, http.StatusBadRequest, status, name)
		assert.Equal(t, "BAD_REQUEST", jsonMap(t, body)["error_code"], name)
	}
}

func TestRSVP(t *testing.T) {
	app := NewApp(dbtest.Open(t), testConfig(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/rsvp", bytes.NewBufferString(`{"name":"Guest","attending":true}`))
	req.Header.Set("Content-Type", "application/json")
	status, body, _ := send(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "RSVP received", jsonMap(t, body)["message"])

	status, _, _ = send(t, app, httptest.NewRequest(http.MethodPost, "/api/rsvp", nil))
	assert.Equal(t, http.StatusOK, status)

	for _, raw := range []string{`{broken`, `["not","an","object"]`, `"guest"`} {
		req = httptest.NewRequest(http.MethodPost, "/api/rsvp", bytes.NewBufferString(raw))
		req.Header.Set("Content-Type", "application/json")
		status, _, _ = send(t, app, req)
		assert.Equal(t, http.StatusBadRequest, status, raw)
	}
}
