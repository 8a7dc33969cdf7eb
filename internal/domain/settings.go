package domain

import "time"

// Settings is the singleton document holding the dashboard note and the AI key.
type Settings struct {
	Note      string
	AIAPIKey  string
	UpdatedAt time.Time
}

// HasAIKey reports whether an AI key is stored.
func (s Settings) HasAIKey() bool { return s.AIAPIKey != "" }
