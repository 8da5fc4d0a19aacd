package receipt

import (
	"context"
	"math/rand"
	"time"
)

// MockExtractor is the stand-in variant: it ignores the image and returns a
// plausible supermarket purchase with a randomized amount. Useful for local
// development and demos without model credentials.
type MockExtractor struct {
	rand *rand.Rand
}

// NewMockExtractor creates a mock extractor.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Extract returns canned fields with a whole-dollar amount between $10 and $109.
func (m *MockExtractor) Extract(_ context.Context, _ []byte, _ string) (*Extraction, error) {
	return &Extraction{
		AmountCents:   (m.rand.Int63n(100) + 10) * 100,
		Date:          time.Now().Format("2006-01-02"),
		Location:      "Super Selectos",
		PaymentMethod: "card",
		Category:      "Comida",
		Description:   "Compra de supermercado",
		Items:         []string{"Leche", "Pan", "Huevos", "Frutas"},
	}, nil
}
