package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"myfridge-backend/domain"
	"myfridge-backend/internal/api/presenters"
	"myfridge-backend/internal/utils"
	"myfridge-backend/pkg/notification"
)

type (
	NotificationHandler interface {
		SendDailyReminders(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		cfg                 *utils.Config
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, cfg *utils.Config) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		cfg:                 cfg,
	}
}

// SendDailyReminders is hit by the external cron scheduler, not by users, so
// it is guarded by a shared key header instead of a JWT.
func (h *notificationHandler) SendDailyReminders(c *fiber.Ctx) error {
	key := c.Get("X-Cron-Key")
	if h.cfg.CronSecretKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.CronSecretKey)) != 1 {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSendReminders, domain.ErrInvalidCronKey)
	}

	res, err := h.notificationService.SendDailyReminders(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendReminders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendReminders)
}
