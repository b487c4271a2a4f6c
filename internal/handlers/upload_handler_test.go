package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"product-admin/internal/media"
)

type fakeUploader struct {
	err        error
	gotPath    string
	gotFolder  string
	gotContent []byte
}

func (f *fakeUploader) Upload(_ context.Context, localPath, folder string) (media.Result, error) {
	f.gotPath = localPath
	f.gotFolder = folder
	f.gotContent, _ = os.ReadFile(localPath)
	if f.err != nil {
		return media.Result{}, f.err
	}
	return media.Result{
		URL:      "https://res.cloudinary.com/demo/image/upload/v1/" + folder + "/abc.png",
		PublicID: folder + "/abc",
	}, nil
}

func uploadRouter(up media.Uploader, dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.POST("/api/upload", NewUploadHandler(up, dir).Upload)
	return g
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestUpload_Success(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	w := httptest.NewRecorder()
	uploadRouter(up, dir).ServeHTTP(w, multipartRequest(t, ImageField, "shoe.PNG", []byte("png-bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["ok"])
	require.True(t, strings.HasPrefix(body["url"].(string), "https://"))
	require.Equal(t, "products/abc", body["public_id"])

	require.Equal(t, media.Folder, up.gotFolder)
	require.Equal(t, []byte("png-bytes"), up.gotContent)
	require.True(t, strings.HasSuffix(up.gotPath, ".png"))

	_, err := os.Stat(up.gotPath)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Empty(t, dirEntries(t, dir))
}

func TestUpload_FailureStillRemovesStagedFile(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{err: errors.New("cloud unavailable")}
	w := httptest.NewRecorder()
	uploadRouter(up, dir).ServeHTTP(w, multipartRequest(t, ImageField, "shoe.jpg", []byte("jpg-bytes")))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"ok":false,"error":"Upload failed"}`, w.Body.String())
	require.NotEmpty(t, up.gotPath)
	require.Empty(t, dirEntries(t, dir))
}

func TestUpload_NoFile(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}

	w := httptest.NewRecorder()
	uploadRouter(up, dir).ServeHTTP(w, multipartRequest(t, "", "", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"ok":false,"error":"No file uploaded"}`, w.Body.String())

	w = httptest.NewRecorder()
	uploadRouter(up, dir).ServeHTTP(w, multipartRequest(t, "photo", "a.png", []byte("x")))
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Empty(t, up.gotPath)
	require.Empty(t, dirEntries(t, dir))
}

func TestUpload_Unconfigured(t *testing.T) {
	dir := t.TempDir()
	w := httptest.NewRecorder()
	uploadRouter(media.Unavailable{}, dir).ServeHTTP(w, multipartRequest(t, ImageField, "a.png", []byte("x")))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Empty(t, dirEntries(t, dir))
}
