package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// LLMClient provides access to large language model APIs
type LLMClient struct {
	httpClient *http.Client
	logger     *logger.Logger
	config     LLMConfig
}

// LLMConfig holds LLM client configuration
type LLMConfig struct {
	Provider     string // claude, openai
	ClaudeAPIKey string
	OpenAIAPIKey string
	Model        string // claude-3-5-sonnet-20241022, gpt-4-turbo, etc.
	Temperature  float64
	MaxTokens    int
	Timeout      time.Duration
}

// NewLLMClient creates a new LLM client
func NewLLMClient(cfg LLMConfig, log *logger.Logger) *LLMClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2 // Low temperature for factual analysis
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Model == "" {
		if cfg.Provider == "claude" {
			cfg.Model = "claude-3-5-sonnet-20241022"
		} else {
			cfg.Model = "gpt-4-turbo"
		}
	}

	return &LLMClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log.WithComponent("llm-client"),
		config: cfg,
	}
}

// ClassifyRequest describes the content sent for a second opinion.
type ClassifyRequest struct {
	Kind    string // phone, url, text
	Input   string
	Level   models.RiskLevel
	Score   int
	Summary string
}

// Classify asks the configured model for its own risk assessment of the
// content. The local verdict is included so the model can disagree with it.
func (c *LLMClient) Classify(ctx context.Context, req ClassifyRequest) (*models.AIOpinion, error) {
	prompt := c.buildClassifyPrompt(req)

	var content string
	var err error

	switch c.config.Provider {
	case "claude":
		content, err = c.callClaude(ctx, classifySystemPrompt, prompt)
	case "openai":
		content, err = c.callOpenAI(ctx, classifySystemPrompt, prompt)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", c.config.Provider)
	}

	if err != nil {
		return nil, err
	}

	opinion, err := c.parseOpinion(content)
	if err != nil {
		return nil, err
	}
	opinion.Model = c.config.Model
	return opinion, nil
}

const classifySystemPrompt = `You are a scam and fraud risk analyst. You assess phone numbers, URLs, and messages for scam indicators: phishing, impersonation of trusted brands or authorities, urgency tactics, requests for money or credentials, and suspicious domains.

Respond with valid JSON only, using this structure:
{
  "risk_assessment": "safe|caution|danger",
  "score": 0-100,
  "reasoning": "brief explanation of your assessment"
}

Be concise. When in doubt, err on the side of caution.`

// buildClassifyPrompt builds the user prompt for a risk classification
func (c *LLMClient) buildClassifyPrompt(req ClassifyRequest) string {
	var sb strings.Builder

	sb.WriteString("Assess the following content for scam or fraud risk:\n\n")
	sb.WriteString(fmt.Sprintf("**Content Type:** %s\n", req.Kind))
	sb.WriteString("\n**Content:**\n```\n")
	sb.WriteString(req.Input)
	sb.WriteString("\n```\n")

	sb.WriteString(fmt.Sprintf("\n**Rule-based verdict:** %s (score %d)\n", req.Level, req.Score))
	if req.Summary != "" {
		sb.WriteString(fmt.Sprintf("**Rule findings:** %s\n", req.Summary))
	}

	sb.WriteString("\nProvide your own assessment in JSON format.")

	return sb.String()
}

// callClaude makes a request to Claude API
func (c *LLMClient) callClaude(ctx context.Context, system, prompt string) (string, error) {
	url := "https://api.anthropic.com/v1/messages"

	reqBody := map[string]interface{}{
		"model":       c.config.Model,
		"max_tokens":  c.config.MaxTokens,
		"temperature": c.config.Temperature,
		"system":      system,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.config.ClaudeAPIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Claude API error %d: %s", resp.StatusCode, string(body))
	}

	var claudeResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", err
	}

	var content string
	for _, part := range claudeResp.Content {
		if part.Type == "text" {
			content += part.Text
		}
	}

	return content, nil
}

// callOpenAI makes a request to OpenAI API
func (c *LLMClient) callOpenAI(ctx context.Context, system, prompt string) (string, error) {
	url := "https://api.openai.com/v1/chat/completions"

	reqBody := map[string]interface{}{
		"model":       c.config.Model,
		"max_tokens":  c.config.MaxTokens,
		"temperature": c.config.Temperature,
		"messages": []map[string]interface{}{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.OpenAIAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error %d: %s", resp.StatusCode, string(body))
	}

	var openAIResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

// parseOpinion parses the JSON opinion from the LLM response
func (c *LLMClient) parseOpinion(content string) (*models.AIOpinion, error) {
	content = strings.TrimSpace(content)

	// Handle markdown code blocks
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Find JSON in response
	startIdx := strings.Index(content, "{")
	endIdx := strings.LastIndex(content, "}")
	if startIdx != -1 && endIdx != -1 && endIdx > startIdx {
		content = content[startIdx : endIdx+1]
	}

	var opinion models.AIOpinion
	if err := json.Unmarshal([]byte(content), &opinion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := opinion.Validate(); err != nil {
		return nil, err
	}

	return &opinion, nil
}
