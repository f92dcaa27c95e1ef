// Package llm talks to a vision-capable chat-completion endpoint.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"snip-vision-llm/capture"
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

var config *Config

func Init(cfg *Config) {
	config = cfg
}

// Chat-completion wire structures.
type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

type Content struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type ChatResponse struct {
	Choices []Choice  `json:"choices"`
	Error   *APIError `json:"error,omitempty"`
}

type Choice struct {
	Message ResponseMessage `json:"message"`
}

type ResponseMessage struct {
	Content string `json:"content"`
}

type APIError struct {
	Message string      `json:"message"`
	Type    string      `json:"type"`
	Code    interface{} `json:"code"` // Can be string or number
}

const (
	maxTokens      = 500
	requestTimeout = 45 * time.Second
)

// instruction asks the model to extract, explain and answer using the
// markup cues the formatter understands.
const instruction = "Please perform the following tasks:\n" +
	"1. Analyze the provided image to extract all text accurately.\n" +
	"2. Examine the extracted text to determine if it contains a problem, question, or concept that needs explanation.\n" +
	"3. Provide a clear, step-by-step solution or explanation based on the extracted text.\n" +
	"4. Use markdown-like formatting for readability:\n" +
	"   - Headings: '### '\n" +
	"   - Subheadings: '## '\n" +
	"   - Bullet points: '- '\n" +
	"   - Code blocks: triple backticks (```)\n" +
	"   - Inline bold: '**bold text**'\n" +
	"5. Return the final answer in plain text format with these cues."

// AnalyzeImage sends a PNG capture to the vision model and returns the
// trimmed response text. One request per call: failures are returned to the
// caller, which renders them inline instead of retrying.
func AnalyzeImage(pngData []byte) (string, error) {
	if config == nil {
		return "", fmt.Errorf("LLM client not initialized")
	}
	if config.APIKey == "" {
		return "", fmt.Errorf("API key is required")
	}
	if config.Model == "" {
		return "", fmt.Errorf("model is required")
	}
	if len(pngData) == 0 {
		return "", fmt.Errorf("image data is empty")
	}

	request := ChatRequest{
		Model: config.Model,
		Messages: []Message{
			{
				Role: "user",
				Content: []Content{
					{Type: "text", Text: instruction},
					{Type: "image_url", ImageURL: &ImageURL{URL: capture.DataURL(pngData)}},
				},
			},
		},
		MaxTokens: maxTokens,
	}

	response, err := makeAPIRequest(request)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in API response")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func makeAPIRequest(request ChatRequest) (*ChatResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", config.APIKey))

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %v", err)
	}
	defer resp.Body.Close()

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("API error: %s (type: %s, code: %v)", response.Error.Message, response.Error.Type, response.Error.Code)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return &response, nil
}
