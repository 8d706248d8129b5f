package handler

import (
	"orbitmarket/internal/infrastructure/storage"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/response"

	"github.com/labstack/echo/v4"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"application/zip": true,
}

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	if h.storageClient == nil {
		return response.Error(c, errors.ServiceUnavailable("File uploads are currently unavailable", nil))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file", err))
	}

	if fileHeader.Size > maxUploadSize {
		return response.Error(c, errors.BadRequest("File exceeds the 10 MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return response.Error(c, errors.BadRequest("Unsupported file type", nil))
	}

	folder := c.FormValue("folder")
	switch folder {
	case "", "gigs", "avatars", "deliverables", "attachments":
	default:
		return response.Error(c, errors.BadRequest("Unknown upload folder", nil))
	}
	if folder == "" {
		folder = "attachments"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"url":  url,
		"name": fileHeader.Filename,
	})
}
