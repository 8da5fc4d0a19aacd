package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"
)

// geminiPrompt instructs the model to answer with one strict JSON object so
// the response can be unmarshalled directly.
const geminiPrompt = "You are a receipt parser for a personal finance app.\n\n" +
	"Task:\n" +
	"- Read the attached receipt image.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a single JSON object.\n\n" +
	"The object must have these fields:\n" +
	"- \"amount\": number, the receipt total in dollars\n" +
	"- \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
	"- \"location\": string, the merchant name\n" +
	"- \"payment_method\": string, one of cash, card, transfer, crypto, other\n" +
	"- \"category\": string, a short spending category in Spanish (e.g. \"Comida\")\n" +
	"- \"description\": string, a short purchase description in Spanish\n" +
	"- \"items\": array of strings, the line items\n\n" +
	"Rules:\n" +
	"- If a field cannot be read, use an empty string (or [] for items).\n" +
	"- Return ONLY valid raw JSON.\n" +
	"- Do NOT wrap the response in code fences.\n" +
	"- Output must begin with \"{\" and end with \"}\".\n"

// GeminiExtractor reads receipt fields with the Gemini API. It satisfies the
// same interface as the mock, so swapping implementations is a config change.
type GeminiExtractor struct {
	model string
}

// NewGeminiExtractor creates an extractor using the given model name. The
// API key is read from the environment by the genai client.
func NewGeminiExtractor(model string) *GeminiExtractor {
	return &GeminiExtractor{model: model}
}

// geminiReceipt mirrors the JSON shape the prompt asks for. The amount is in
// dollars and converted to cents after parsing.
type geminiReceipt struct {
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Location      string   `json:"location"`
	PaymentMethod string   `json:"payment_method"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Items         []string `json:"items"`
}

// Extract sends the image to Gemini and parses the structured reply.
func (g *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*Extraction, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: geminiPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var parsed geminiReceipt
	clean := cleanModelJSON(rawText)
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal model JSON: %w\nraw response: %s", err, rawText)
	}

	return &Extraction{
		AmountCents:   int64(math.Round(parsed.Amount * 100)),
		Date:          parsed.Date,
		Location:      parsed.Location,
		PaymentMethod: parsed.PaymentMethod,
		Category:      parsed.Category,
		Description:   parsed.Description,
		Items:         parsed.Items,
	}, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the formatting instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only the first '{' through the last '}' if junk remains.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
