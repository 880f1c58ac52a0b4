package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-talent/internal/services"
)

type AudioHandler struct {
	storageService services.StorageService
}

func NewAudioHandler(storageService services.StorageService) *AudioHandler {
	return &AudioHandler{
		storageService: storageService,
	}
}

// HandleGetAudio handles GET /audio/:name. Speech files are removed once
// played, so a stale link is a 404.
func (h *AudioHandler) HandleGetAudio(c *fiber.Ctx) error {
	path, err := h.storageService.GetFilePath(c.Params("name"))
	if err != nil {
		return fiber.ErrNotFound
	}

	if _, err := os.Stat(path); err != nil {
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.SendFile(path)
}
