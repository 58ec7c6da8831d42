package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"myfridge-backend/domain"
	"myfridge-backend/internal/api/presenters"
	"myfridge-backend/pkg/storageplace"
)

type (
	StorageHandler interface {
		GetStoragePlaces(c *fiber.Ctx) error
		CreateStoragePlace(c *fiber.Ctx) error
		DeleteStoragePlace(c *fiber.Ctx) error
	}

	storageHandler struct {
		storageService storageplace.StorageService
		validator      *validator.Validate
	}
)

func NewStorageHandler(storageService storageplace.StorageService, validator *validator.Validate) StorageHandler {
	return &storageHandler{
		storageService: storageService,
		validator:      validator,
	}
}

func (h *storageHandler) GetStoragePlaces(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.storageService.GetStoragePlaces(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStoragePlaces, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStoragePlaces)
}

func (h *storageHandler) CreateStoragePlace(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateStoragePlaceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStoragePlace, err)
	}

	res, err := h.storageService.CreateStoragePlace(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStoragePlace, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStoragePlace)
}

func (h *storageHandler) DeleteStoragePlace(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	storageID := c.Params("id")

	if err := h.storageService.DeleteStoragePlace(c.Context(), storageID, userID); err != nil {
		if errors.Is(err, domain.ErrStoragePlaceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteStoragePlace, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteStoragePlace, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStoragePlace)
}
