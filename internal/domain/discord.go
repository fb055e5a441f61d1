package domain

import (
	"context"
	"time"
)

// DiscordMessage is one scraped message from a community feed channel.
type DiscordMessage struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// DiscordService fetches the latest messages from the configured community
// channels. One fetch per call; errors are surfaced to the caller as-is.
type DiscordService interface {
	LatestSales(ctx context.Context) ([]DiscordMessage, error)
	LatestFreeSc(ctx context.Context) ([]DiscordMessage, error)
}
