package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/api/metrics"
	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// UploadHandler stores image uploads. The stored path is only bound to a
// project later, when the client attaches it via add-project.
type UploadHandler struct {
	uploads ports.UploadStore
}

func NewUploadHandler(uploads ports.UploadStore) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores the multipart "image" field and returns its retrieval path.
//
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      200    {object}  uploadResponse
// @Failure      400    {object}  map[string]string
// @Router       /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domain.ErrNoFile
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	url, err := h.uploads.Save(fileHeader.Filename, src)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}
