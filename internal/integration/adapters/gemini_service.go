// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/spendwise/backend/internal/application/adapter"
)

// GeminiService implements the SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest analyzes the spending profile and returns savings suggestions.
func (s *GeminiService) Suggest(ctx context.Context, profile *adapter.SpendingProfile) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Get the model
	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	// Build the prompt
	prompt := s.buildPrompt(profile)

	// Generate response
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	// Parse response
	suggestions, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestions, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(profile *adapter.SpendingProfile) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance advisor. Your task is to analyze a user's recent spending and active saving goals, and produce practical money-saving suggestions.

RULES:
- Base every suggestion on the actual spending data provided below
- Be specific: reference the categories or spending patterns you see
- Each suggestion must be a single, actionable sentence
- Do not suggest financial products or investments
- Return between 3 and 5 suggestions

RECENT EXPENSES:
`)

	for _, rec := range profile.Records {
		sb.WriteString(fmt.Sprintf("- Description: \"%s\", Category: %s, Amount: %s %s, Date: %s, Type: %s\n",
			rec.Description, rec.CategoryName, rec.Amount, rec.Currency, rec.Date, rec.Type))
	}

	sb.WriteString("\nACTIVE SAVING GOALS:\n")
	if len(profile.Goals) > 0 {
		for _, goal := range profile.Goals {
			sb.WriteString(fmt.Sprintf("- Name: \"%s\", Target: %s, Current: %s, Deadline: %s\n",
				goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline))
		}
	} else {
		sb.WriteString("(No active goals)\n")
	}

	sb.WriteString(`

Respond with a JSON array of suggestion strings:
["suggestion 1", "suggestion 2", "suggestion 3"]

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// parseResponse parses the Gemini response into suggestion strings.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
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

	// Parse JSON
	var suggestions []string
	if err := json.Unmarshal([]byte(textContent), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	cleaned := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		suggestion = strings.TrimSpace(suggestion)
		if suggestion != "" {
			cleaned = append(cleaned, suggestion)
		}
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("no suggestions in response")
	}

	return cleaned, nil
}
