package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"myfridge-backend/domain"
	"myfridge-backend/internal/api/presenters"
	"myfridge-backend/internal/utils/storage"
	"myfridge-backend/pkg/scan"
)

type (
	ScanHandler interface {
		ScanProduct(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
	}
)

func NewScanHandler(scanService scan.ScanService) ScanHandler {
	return &scanHandler{scanService: scanService}
}

func (h *scanHandler) ScanProduct(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNoImage, err)
	}

	if file.Size > domain.MaxScanImageBytes {
		return presenters.ErrorResponse(c, fiber.StatusRequestEntityTooLarge, domain.MessageFailedImageTooLarge, nil)
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.IsAllowedImage(contentType) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanProduct, errors.New("unsupported image type"))
	}

	opened, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanProduct, err)
	}
	defer opened.Close()

	image, err := io.ReadAll(opened)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanProduct, err)
	}

	res, err := h.scanService.ScanProduct(c.Context(), image, contentType)
	if err != nil {
		if errors.Is(err, domain.ErrAIServiceUnavailable) || errors.Is(err, domain.ErrMalformedAIResponse) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedScanProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanProduct)
}
