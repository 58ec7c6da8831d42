package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"myfridge-backend/domain"
	"myfridge-backend/internal/utils"
)

// Client is the single seam to the generative models. It returns the raw
// response text; parsing and validation happen in the calling package.
type (
	Client interface {
		GenerateText(ctx context.Context, prompt string) (string, error)
		GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error)
	}

	client struct {
		apiKey      string
		textModel   string
		visionModel string
		httpClient  *http.Client
		log         *zap.Logger
	}
)

func NewClient(cfg *utils.Config, log *zap.Logger) Client {
	return &client{
		apiKey:      cfg.GeminiAPIKey,
		textModel:   cfg.GeminiModel,
		visionModel: cfg.GeminiVisionModel,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	parts := []map[string]interface{}{
		{"text": prompt},
	}
	return c.generate(ctx, c.textModel, parts)
}

func (c *client) GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error) {
	parts := []map[string]interface{}{
		{"text": prompt},
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(image),
			},
		},
	}
	return c.generate(ctx, c.visionModel, parts)
}

func (c *client) generate(ctx context.Context, model string, parts []map[string]interface{}) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY not configured", domain.ErrAIServiceUnavailable)
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		model, c.apiKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"response_mime_type": "application/json",
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("gemini request failed", zap.String("model", model), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrAIServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.log.Warn("gemini non-success status",
			zap.String("model", model),
			zap.Int("status", resp.StatusCode),
		)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrAIServiceUnavailable, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedAIResponse, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrMalformedAIResponse)
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
