package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"helpdesk/config"

	"github.com/go-resty/resty/v2"
)

// GeminiClient is a small client for the Google Generative Language API.
// It sends a single text prompt and returns the first candidate's text.
type GeminiClient struct {
	apiKey  string
	model   string
	baseUrl string
	http    *resty.Client
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.GeminiApiKey,
		model:   cfg.GeminiModel,
		baseUrl: strings.TrimRight(cfg.GeminiBaseUrl, "/"),
		http:    resty.New().SetTimeout(15 * time.Second),
	}
}

// IsConfigured reports whether an API key is present. Without one, callers
// fall back to locally built text.
func (g *GeminiClient) IsConfigured() bool {
	return g.apiKey != ""
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt to the generateContent endpoint.
func (g *GeminiClient) Generate(prompt string) (string, error) {
	if !g.IsConfigured() {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseUrl, g.model, g.apiKey)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	resp, err := g.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gemini API error: %s", resp.String())
	}

	var out geminiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
