package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

type stubUploadStore struct {
	savedName string
	savedBody string
}

func (s *stubUploadStore) Save(originalName string, src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	s.savedName = originalName
	s.savedBody = string(data)
	return "/uploads/123-" + originalName, nil
}

func (s *stubUploadStore) Remove(string) error { return nil }

func TestUploadHandler_Upload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "avatar.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte("pixels")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := &stubUploadStore{}
	if err := NewUploadHandler(store).Upload(c); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if store.savedName != "avatar.png" || store.savedBody != "pixels" {
		t.Fatalf("saved %q/%q", store.savedName, store.savedBody)
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.URL != "/uploads/123-avatar.png" {
		t.Fatalf("url = %q", resp.URL)
	}
}

func TestUploadHandler_MissingFile(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewUploadHandler(&stubUploadStore{}).Upload(c); err != domain.ErrNoFile {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}
