// Package llm drafts renewal reminders through the Anthropic Messages API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// ErrNoKey is returned when no API key is available for a call.
var ErrNoKey = errors.New("llm: api key not configured")

// Client calls the Messages API. The key is passed per call so a key saved
// at runtime takes effect without a restart.
type Client struct {
	baseURL   string
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClient creates a Client. An empty baseURL uses the SDK default.
func NewClient(baseURL, model string, maxTokens int64, timeout time.Duration, logger *slog.Logger) *Client {
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
		log:       logger.With("adapter", "llm"),
	}
}

func (c *Client) sdk(apiKey string) anthropic.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(c.timeout),
	}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	return anthropic.NewClient(opts...)
}

// CheckKey sends a one-token request and reports whether the key was accepted.
func (c *Client) CheckKey(ctx context.Context, apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}

	_, err := c.sdk(apiKey).Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 1,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})
	if err != nil {
		c.log.InfoContext(ctx, "api key rejected", slog.String("error", err.Error()))
		return false
	}
	return true
}

// DraftReminders asks the model for one reminder message per input.
func (c *Client) DraftReminders(ctx context.Context, apiKey string, inputs []domain.ReminderInput, now time.Time) ([]domain.Reminder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoKey
	}
	if len(inputs) == 0 {
		return []domain.Reminder{}, nil
	}

	prompt, err := buildPrompt(inputs, now)
	if err != nil {
		return nil, err
	}

	msg, err := c.sdk(apiKey).Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, errors.New("llm: empty response")
	}

	reminders, err := parseReminders(msg.Content[0].Text)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "reminders drafted",
		slog.Int("requested", len(inputs)),
		slog.Int("drafted", len(reminders)),
	)

	return reminders, nil
}

type promptItem struct {
	Domain      string `json:"domain"`
	RenewsAt    string `json:"renews_at"`
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email"`
	Balance     string `json:"balance_usd"`
	PastDue     bool   `json:"past_due"`
}

func buildPrompt(inputs []domain.ReminderInput, now time.Time) (string, error) {
	items := make([]promptItem, len(inputs))
	for i, in := range inputs {
		items[i] = promptItem{
			Domain:      in.Domain,
			RenewsAt:    in.RenewsAt.Format("2006-01-02"),
			ClientName:  in.ClientName,
			ClientEmail: in.ClientEmail,
			Balance:     in.Balance.StringFixed(2),
			PastDue:     in.PastDue,
		}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("llm: marshal prompt items: %w", err)
	}

	return fmt.Sprintf(`You write short, polite payment reminder emails for a web agency.
Today is %s. For each client below write one reminder about the domain renewal.
Mention the amount due in USD. Past-due clients get a firmer but still courteous tone.

Clients:
%s

Output ONLY a JSON array, one object per client, matching:
[{"domain": "<domain>", "client_email": "<email>", "message": "<email body>"}]
No markdown, no explanations.`, now.Format("2006-01-02"), string(data)), nil
}

func parseReminders(text string) ([]domain.Reminder, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, errors.New("llm: no JSON array in response")
	}

	var reminders []domain.Reminder
	if err := json.Unmarshal([]byte(text[start:end+1]), &reminders); err != nil {
		return nil, fmt.Errorf("llm: decode reminders: %w", err)
	}

	out := reminders[:0]
	for _, r := range reminders {
		if r.Domain == "" || r.Message == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
