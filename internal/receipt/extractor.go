// Package receipt extracts structured transaction fields from receipt
// images. The extractor is a capability behind an interface so the server
// can run with a canned stand-in or a real model-backed implementation; the
// rest of the application never knows which one is wired. Extracted fields
// are best-effort prefill suggestions and are never trusted beyond normal
// transaction validation.
package receipt

import "context"

// Extraction is the best-effort structured guess read from a receipt image.
type Extraction struct {
	AmountCents   int64    `json:"amount_cents"`
	Date          string   `json:"date"` // YYYY-MM-DD
	Location      string   `json:"location"`
	PaymentMethod string   `json:"payment_method"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Items         []string `json:"items"`
}

// Extractor reads transaction fields out of a receipt image.
type Extractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (*Extraction, error)
}
