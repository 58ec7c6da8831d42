package scan

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"myfridge-backend/domain"
	"myfridge-backend/internal/utils/storage"
	"myfridge-backend/pkg/gemini"
)

const visionPrompt = `Analyze this photo of groceries and return a JSON array of the products you can identify.

Each element must have these fields:
- "name": the product name in English
- "expiry_date": the expiration date in YYYY-MM-DD format if printed on the packaging and readable, otherwise an empty string
- "quantity": how many identical items you grouped into this entry (integer)
- "volume": the size of a SINGLE item (number), not the total for the group
- "unit": the unit for volume, for example "ml", "l", "g", "kg", or "pcs" for countable items
- "category": exactly one of: Dairy, Meat, Fish, Vegetables, Fruits, Grains, Bakery, Frozen, Beverages, Sweets, Sauces, Canned, Nuts, Eggs, Ready meals, Alcohol, Others

Group identical products into one entry and count them in "quantity". Six identical 200ml yogurts become one entry with quantity 6 and volume 200.

Return ONLY the JSON array, no markdown, no explanations. Return an empty array if no groceries are visible.`

type (
	ScanService interface {
		ScanProduct(ctx context.Context, image []byte, contentType string) ([]domain.ScannedProduct, error)
	}

	scanService struct {
		ai  gemini.Client
		s3  storage.AwsS3
		log *zap.Logger
	}
)

func NewScanService(ai gemini.Client, s3 storage.AwsS3, log *zap.Logger) ScanService {
	return &scanService{ai: ai, s3: s3, log: log}
}

func (s *scanService) ScanProduct(ctx context.Context, image []byte, contentType string) ([]domain.ScannedProduct, error) {
	raw, err := s.ai.GenerateVision(ctx, visionPrompt, contentType, image)
	if err != nil {
		return nil, err
	}

	products, err := NormalizeScannedProducts(raw)
	if err != nil {
		s.log.Warn("unparseable vision response",
			zap.Int("response_len", len(raw)),
			zap.Error(err),
		)
		return nil, err
	}

	// Archive the photo for later debugging. The scan result does not depend
	// on it, so an S3 failure only gets logged.
	if s.s3 != nil {
		dir := "scans/" + time.Now().UTC().Format("2006-01-02")
		if _, err := s.s3.UploadBytes(ctx, dir, image, contentType); err != nil {
			s.log.Warn("failed to archive scan photo", zap.Error(err))
		}
	}

	s.log.Info("scan completed",
		zap.Int("products", len(products)),
		zap.String("names", previewNames(products)),
	)

	return products, nil
}

func previewNames(products []domain.ScannedProduct) string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
