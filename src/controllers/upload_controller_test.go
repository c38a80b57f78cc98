package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-BenefitsIntake/src/services/uploads"
)

func newUploadApp(t *testing.T) (*fiber.App, *uploads.Service) {
	t.Helper()
	storage := uploads.NewService(t.TempDir())
	ctrl := NewUploadController(storage)

	app := fiber.New()
	app.Post("/uploads", ctrl.UploadFile)
	app.Get("/uploads/:filename", ctrl.ServeFile)
	return app, storage
}

func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadAndServeFile(t *testing.T) {
	app, _ := newUploadApp(t)
	content := []byte("fake png bytes")

	body, contentType := multipartFile(t, "file", "license.png", content)
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var uploaded struct {
		Success bool   `json:"success"`
		FileURL string `json:"fileUrl"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))
	assert.True(t, uploaded.Success)
	require.True(t, strings.HasPrefix(uploaded.FileURL, "/uploads/"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, uploaded.FileURL, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000", resp.Header.Get("Cache-Control"))

	served, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, served)
}

func TestUploadWithoutFile(t *testing.T) {
	app, _ := newUploadApp(t)

	req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeFileErrors(t *testing.T) {
	app, _ := newUploadApp(t)

	t.Run("ParentSegmentRejected", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/..hidden.png", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingFile", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/nonexistent.png", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
