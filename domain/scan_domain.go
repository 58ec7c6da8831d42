package domain

var (
	MessageSuccessScanProduct = "image analyzed successfully"

	MessageFailedScanProduct   = "failed to analyze image"
	MessageFailedImageTooLarge = "image too large, max 5MB"
	MessageFailedNoImage       = "no image uploaded"
)

// MaxScanImageBytes caps uploaded photos at 5MB.
const MaxScanImageBytes = 5 * 1024 * 1024

type (
	// ScannedProduct is one grocery item extracted from a photo. Quantity is
	// the count of identical items the model grouped into this entry and
	// Volume is the size of a single item, not the total; the grouping itself
	// is a prompt contract, never recomputed here.
	ScannedProduct struct {
		Name       string   `json:"name"`
		ExpiryDate string   `json:"expiry_date"`
		Quantity   *int     `json:"quantity,omitempty"`
		Volume     *float64 `json:"volume,omitempty"`
		Unit       string   `json:"unit"`
		Category   string   `json:"category"`
	}
)
