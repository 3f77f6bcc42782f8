package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/creativepulse/core/internal/infrastructure/config"
	"github.com/creativepulse/core/internal/infrastructure/logger"
)

// fallbackChecklist is returned whenever the suggestion call cannot
// produce a usable list: missing credential, transport failure, or a
// malformed response. Callers never see an error.
var fallbackChecklist = []string{
	"Review Requirements",
	"Brainstorm Concepts",
	"Execute Design",
	"Quality Check",
}

type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChecklistService asks an LLM for a subtask checklist while a task is
// being drafted. It only ever affects drafts, degrades to a fixed
// fallback on any failure, and is bounded by a per-call timeout so a
// slow upstream can never block lifecycle operations.
type ChecklistService struct {
	client  completionClient
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

// NewChecklistService creates a new checklist service. With no API key
// configured the service runs in fallback-only mode.
func NewChecklistService(cfg config.AIConfig, logger *logger.Logger) *ChecklistService {
	s := &ChecklistService{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
	if cfg.APIKey != "" {
		s.client = openai.NewClient(cfg.APIKey)
	} else {
		logger.Warn("No AI API key configured, checklist suggestions will use the fallback list")
	}
	if s.model == "" {
		s.model = openai.GPT4oMini
	}
	if s.timeout <= 0 {
		s.timeout = 15 * time.Second
	}
	return s
}

// Generate returns 4-6 suggested subtask labels for a draft task.
func (s *ChecklistService) Generate(ctx context.Context, title, brand, pic string) []string {
	if s.client == nil {
		return fallbackChecklist
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"I have a creative task titled %q for the brand %q assigned to %q. "+
			"Generate a checklist of 4-6 specific, actionable subtasks for a creative designer "+
			"to complete this request efficiently. "+
			"Return only the list of subtasks as a JSON array of strings, with no markdown formatting.",
		title, brand, pic,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a creative director assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.logger.Warn("Checklist suggestion call failed, using fallback", "error", err)
		return fallbackChecklist
	}
	if len(resp.Choices) == 0 {
		s.logger.Warn("Checklist suggestion returned no choices, using fallback")
		return fallbackChecklist
	}

	items, err := parseChecklist(resp.Choices[0].Message.Content)
	if err != nil {
		s.logger.Warn("Checklist suggestion response was malformed, using fallback", "error", err)
		return fallbackChecklist
	}

	return items
}

// parseChecklist decodes a JSON array of strings, tolerating the code
// fences models add despite being told not to.
func parseChecklist(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode checklist: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("checklist is empty")
	}
	return items, nil
}
