package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"myfridge-backend/internal/utils"
)

type (
	// PushMessage is the Expo push API payload for one device.
	PushMessage struct {
		To    string `json:"to"`
		Title string `json:"title"`
		Body  string `json:"body"`
		Sound string `json:"sound,omitempty"`
	}

	PushSender interface {
		Send(ctx context.Context, msg PushMessage) error
	}

	expoSender struct {
		url        string
		httpClient *http.Client
	}
)

func NewExpoSender(cfg *utils.Config) PushSender {
	return &expoSender{
		url:        cfg.ExpoPushURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (e *expoSender) Send(ctx context.Context, msg PushMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("expo push failed: %s - %s", resp.Status, string(body))
	}

	return nil
}
