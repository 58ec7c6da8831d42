package domain

import (
	"errors"
)

var (
	MessageSuccessSendReminders = "daily reminders sent"

	MessageFailedSendReminders = "failed to send daily reminders"

	ErrInvalidCronKey = errors.New("invalid cron key")
)

type (
	SendRemindersResponse struct {
		Sent int `json:"sent"`
	}
)
