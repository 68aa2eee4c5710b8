// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/billwise/backend/internal/application/adapter"
)

// GeminiScanner implements the adapter.ReceiptScanner interface using
// Google Gemini.
type GeminiScanner struct {
	apiKey    string
	modelName string
}

// NewGeminiScanner creates a new Gemini receipt scanner instance.
func NewGeminiScanner(apiKey string) *GeminiScanner {
	return &GeminiScanner{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini scanner is available and properly configured.
func (s *GeminiScanner) IsAvailable() bool {
	return s.apiKey != ""
}

// Scan extracts structured bill fields from a receipt image.
func (s *GeminiScanner) Scan(ctx context.Context, image []byte, mimeType string) (*adapter.ReceiptFields, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini scanner is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	// Gemini wants the bare subtype for inline image data
	format := strings.TrimPrefix(mimeType, "image/")

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, image),
		genai.Text(receiptPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	fields, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return fields, nil
}

const receiptPrompt = `Voce e um especialista em extracao de dados de comprovantes e boletos. Analise a imagem e extraia os campos abaixo.

REGRAS:
- "merchant": nome do estabelecimento ou emissor da conta, como impresso
- "amount": valor total como string decimal com ponto ("149.90"), sem simbolo de moeda
- "date": data de vencimento ou de emissao no formato YYYY-MM-DD, ou null se ilegivel
- "suggested_category": uma categoria curta em Portugues Brasileiro (ex: "Energia", "Internet", "Supermercado", "Streaming", "Aluguel")
- "confidence": 0.0-1.0 indicando a confianca geral da extracao
- Campos ilegiveis devem ser null ou string vazia; nunca invente valores

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem texto adicional:
{
  "merchant": "string",
  "amount": "string decimal ou vazio",
  "date": "YYYY-MM-DD ou null",
  "suggested_category": "string",
  "confidence": 0.0-1.0
}
`

// geminiReceipt represents the raw response from Gemini.
type geminiReceipt struct {
	Merchant          string  `json:"merchant"`
	Amount            string  `json:"amount"`
	Date              *string `json:"date"`
	SuggestedCategory string  `json:"suggested_category"`
	Confidence        float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into ReceiptFields.
func (s *GeminiScanner) parseResponse(resp *genai.GenerateContentResponse) (*adapter.ReceiptFields, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiReceipt
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	fields := &adapter.ReceiptFields{
		Merchant:          strings.TrimSpace(raw.Merchant),
		Amount:            strings.TrimSpace(raw.Amount),
		SuggestedCategory: strings.TrimSpace(raw.SuggestedCategory),
		Confidence:        raw.Confidence,
	}

	if raw.Date != nil && *raw.Date != "" {
		if parsed, err := time.Parse("2006-01-02", *raw.Date); err == nil {
			fields.Date = &parsed
		}
	}

	return fields, nil
}

// Ensure GeminiScanner satisfies the interface.
var _ adapter.ReceiptScanner = (*GeminiScanner)(nil)
