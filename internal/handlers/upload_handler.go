package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/configs"
	"github.com/anishanishy81-byte/poverse-sub003/internal/storage"
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Selfie accepts a multipart image for attendance check-in.
func (h *UploadHandler) Selfie(c *fiber.Ctx) error {
	return h.uploadImage(c, "selfies")
}

// Receipt accepts a multipart image attached to an expense.
func (h *UploadHandler) Receipt(c *fiber.Ctx) error {
	return h.uploadImage(c, "receipts")
}

func (h *UploadHandler) uploadImage(c *fiber.Ctx, prefix string) error {
	if h.uploader == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "uploads are not configured")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file required")
	}
	if fh.Size > configs.MaxUploadSizeBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "file too large")
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read file")
	}
	defer f.Close()

	key := storage.ObjectKey(prefix, fh.Filename)
	url, err := h.uploader.UploadImage(c.Context(), key, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
