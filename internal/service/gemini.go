package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/config"
)

// Generation parameters for specialty classification. These are design
// constants, not request options: tuned to keep enough variety in phrasing
// while reliably producing a single recognizable specialty name.
const (
	genTemperature     = 0.7
	genTopP            = 0.95
	genTopK            = 40
	genMaxOutputTokens = 1024
)

// GeminiClient handles Gemini API interactions
type GeminiClient struct {
	config     *config.GeminiConfig
	httpClient *http.Client
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *GeminiClient) IsEnabled() bool {
	return c.config.Enabled
}

// generateContentRequest represents a generateContent request
type generateContentRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"` // "user" or "model"
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// generateContentResponse represents the generateContent API response
type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
}

// batchEmbedRequest represents a batchEmbedContents request
type batchEmbedRequest struct {
	Requests []embedRequest `json:"requests"`
}

type embedRequest struct {
	Model   string        `json:"model"`
	Content geminiContent `json:"content"`
}

// batchEmbedResponse represents the batchEmbedContents API response
type batchEmbedResponse struct {
	Embeddings []struct {
		Values []float32 `json:"values"`
	} `json:"embeddings"`
}

// geminiErrorResponse is the error envelope Google APIs return
type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent sends a single prompt and returns the raw response text.
// One outbound call, no retry, no caching of identical inputs.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.config.Enabled {
		return "", fmt.Errorf("Gemini API is not enabled (missing API key)")
	}

	req := generateContentRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     genTemperature,
			TopP:            genTopP,
			TopK:            genTopK,
			MaxOutputTokens: genMaxOutputTokens,
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.APIBase, c.config.Model)
	body, err := c.post(ctx, url, req)
	if err != nil {
		return "", err
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked by safety filter: %s", result.PromptFeedback.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return text.String(), nil
}

// CreateEmbeddings creates embeddings for the given texts
func (c *GeminiClient) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("Gemini API is not enabled (missing API key)")
	}

	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	req := batchEmbedRequest{Requests: make([]embedRequest, len(texts))}
	model := "models/" + c.config.EmbeddingModel
	for i, t := range texts {
		req.Requests[i] = embedRequest{
			Model:   model,
			Content: geminiContent{Parts: []geminiPart{{Text: t}}},
		}
	}

	url := fmt.Sprintf("%s/models/%s:batchEmbedContents", c.config.APIBase, c.config.EmbeddingModel)
	body, err := c.post(ctx, url, req)
	if err != nil {
		return nil, err
	}

	var result batchEmbedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(result.Embeddings))
	}

	embeddings := make([][]float32, len(texts))
	for i, e := range result.Embeddings {
		embeddings[i] = e.Values
	}

	return embeddings, nil
}

// post sends a JSON request with the API key and returns the response body
func (c *GeminiClient) post(ctx context.Context, url string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
