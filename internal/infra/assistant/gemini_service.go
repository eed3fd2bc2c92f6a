// Package assistant implements the generative-model boundary against the
// Gemini REST API. Every operation degrades to a fixed fallback value when
// the provider is unreachable, misconfigured or returns unparsable output;
// callers never see an error from this collaborator.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"feria/config"
	"feria/internal/domain/entity"
	"feria/internal/domain/service"

	"github.com/pkg/errors"
)

// Fallback values returned whenever the provider cannot answer.
const (
	FallbackClaimResponse = "Gracias por tu descargo, lo hemos registrado."
	FallbackClaimCategory = "General"
	FallbackInsight       = "Productos frescos y atención vecinal garantizada."
	FallbackSearch        = "Explora estos puestos del mercado."
	FallbackDescription   = "Producto de excelente calidad."
	FallbackTip           = "¡A vender con todo!"
)

// Defaults used when the provider answers successfully but with empty text.
const (
	defaultInsight = "Un puesto excelente para visitar hoy."
	defaultTip     = "¡Buen día de ventas para hoy!"
)

const defaultTimeout = 15 * time.Second

type geminiService struct {
	cfg    *config.AssistantConfig
	client *http.Client
	logger *slog.Logger
}

// NewGeminiService creates the assistant boundary. A nil assistant config or
// empty API key is valid: all calls then take the fallback path.
func NewGeminiService(cfg *config.Config, logger *slog.Logger) service.AssistantService {
	assistantCfg := cfg.Assistant

	timeout := defaultTimeout
	if assistantCfg != nil && assistantCfg.Timeout > 0 {
		timeout = assistantCfg.Timeout
	}

	return &geminiService{
		cfg:    assistantCfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// MediateClaim answers a customer claim about the named stall.
func (s *geminiService) MediateClaim(ctx context.Context, claimText, vendorName string) (service.Mediation, error) {
	prompt := fmt.Sprintf(`Un vecino quiere realizar un descargo/reclamo sobre el puesto "%s".
El mensaje del vecino es: "%s".

Actúa como un mediador comunitario empático.
1. Responde al vecino de forma conciliadora.
2. Categoriza el reclamo en una sola palabra (ej: Calidad, Precio, Atención, Higiene).
Responde en JSON con los campos "response" y "category".`, vendorName, claimText)

	var parsed struct {
		Response string `json:"response"`
		Category string `json:"category"`
	}
	if err := s.generateJSON(ctx, s.flashModel(), prompt, &parsed); err != nil {
		s.fallbackTaken("mediate claim", err)

		return service.Mediation{Response: FallbackClaimResponse, Category: FallbackClaimCategory}, nil
	}
	if parsed.Response == "" {
		return service.Mediation{Response: FallbackClaimResponse, Category: FallbackClaimCategory}, nil
	}
	if parsed.Category == "" {
		parsed.Category = FallbackClaimCategory
	}

	return service.Mediation{Response: parsed.Response, Category: parsed.Category}, nil
}

// VendorInsight generates a one-line recommendation for a stall.
func (s *geminiService) VendorInsight(ctx context.Context, vendor *entity.Vendor) (string, error) {
	prompt := fmt.Sprintf("Basado en el feriante '%s' que vende '%s', genera una recomendación de 1 línea para un vecino.",
		vendor.Name, vendor.Category)

	text, err := s.generateText(ctx, s.flashModel(), prompt)
	if err != nil {
		s.fallbackTaken("vendor insight", err)

		return FallbackInsight, nil
	}
	if text == "" {
		return defaultInsight, nil
	}

	return text, nil
}

// SmartSearch matches a free-form query against the given stalls.
func (s *geminiService) SmartSearch(ctx context.Context, query string, vendors []*entity.Vendor) (service.SearchResult, error) {
	lines := make([]string, 0, len(vendors))
	for _, v := range vendors {
		names := make([]string, 0, len(v.Products))
		for _, p := range v.Products {
			names = append(names, p.Name)
		}
		lines = append(lines, fmt.Sprintf("ID: %s, Nombre: %s, Vende: %s, Productos: %s",
			v.ID, v.Name, v.Description, strings.Join(names, ", ")))
	}

	prompt := fmt.Sprintf(`Un vecino busca: "%s". Analiza este directorio y recomienda los puestos que mejor coincidan:
%s
Responde en JSON con los campos "explanation" (breve explicación) e "ids" (lista de IDs recomendados).`,
		query, strings.Join(lines, "\n"))

	var parsed struct {
		Explanation string   `json:"explanation"`
		IDs         []string `json:"ids"`
	}
	if err := s.generateJSON(ctx, s.proModel(), prompt, &parsed); err != nil {
		s.fallbackTaken("smart search", err)

		return service.SearchResult{Recommendation: FallbackSearch, MatchingVendorIDs: []string{}}, nil
	}
	if parsed.Explanation == "" {
		return service.SearchResult{Recommendation: FallbackSearch, MatchingVendorIDs: []string{}}, nil
	}
	if parsed.IDs == nil {
		parsed.IDs = []string{}
	}

	return service.SearchResult{Recommendation: parsed.Explanation, MatchingVendorIDs: parsed.IDs}, nil
}

// GenerateDescription writes sales copy and a suggested price for a product name.
func (s *geminiService) GenerateDescription(ctx context.Context, productName string) (service.ProductCopy, error) {
	prompt := fmt.Sprintf(`Genera una descripción vendedora y un precio sugerido para este producto de feria: "%s".
Responde en JSON con los campos "desc" (descripción atractiva) y "price" (precio estimado, número).`, productName)

	var parsed struct {
		Desc  string  `json:"desc"`
		Price float64 `json:"price"`
	}
	if err := s.generateJSON(ctx, s.flashModel(), prompt, &parsed); err != nil {
		s.fallbackTaken("generate description", err)

		return service.ProductCopy{Description: FallbackDescription, SuggestedPrice: 0}, nil
	}
	if parsed.Desc == "" {
		return service.ProductCopy{Description: FallbackDescription, SuggestedPrice: 0}, nil
	}
	if parsed.Price < 0 {
		parsed.Price = 0
	}

	return service.ProductCopy{Description: parsed.Desc, SuggestedPrice: parsed.Price}, nil
}

// DailySellerTip fetches a one-sentence selling tip for a stall category.
func (s *geminiService) DailySellerTip(ctx context.Context, category string) (string, error) {
	prompt := fmt.Sprintf("Proporciona un consejo de ventas rápido (máximo una frase) para un vendedor de %s en una feria barrial.", category)

	text, err := s.generateText(ctx, s.flashModel(), prompt)
	if err != nil {
		s.fallbackTaken("daily seller tip", err)

		return FallbackTip, nil
	}
	if text == "" {
		return defaultTip, nil
	}

	return text, nil
}

func (s *geminiService) flashModel() string {
	if s.cfg != nil && s.cfg.FlashModel != "" {
		return s.cfg.FlashModel
	}

	return "gemini-3-flash-preview"
}

func (s *geminiService) proModel() string {
	if s.cfg != nil && s.cfg.ProModel != "" {
		return s.cfg.ProModel
	}

	return "gemini-3-pro-preview"
}

func (s *geminiService) fallbackTaken(operation string, err error) {
	if s.logger != nil {
		s.logger.Warn("assistant fallback", "operation", operation, "error", err.Error())
	}
}

// generateRequest is the minimal generateContent request body.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateText calls the provider and returns the first candidate's text.
func (s *geminiService) generateText(ctx context.Context, model, prompt string) (string, error) {
	return s.generate(ctx, model, prompt, false)
}

// generateJSON calls the provider in JSON mode and decodes into out.
func (s *geminiService) generateJSON(ctx context.Context, model, prompt string, out any) error {
	text, err := s.generate(ctx, model, prompt, true)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return errors.Wrap(err, "failed to decode structured assistant output")
	}

	return nil
}

func (s *geminiService) generate(ctx context.Context, model, prompt string, jsonMode bool) (string, error) {
	if s.cfg == nil || s.cfg.APIKey == "" {
		return "", errors.New("assistant is not configured")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonMode {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal generate request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(s.cfg.BaseURL, "/"), model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to build generate request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "generate request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read generate response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("provider returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode generate response")
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
