package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sweepscout/tracker/internal/config"
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	messagesEndpoint = "https://discord.com/api/v9/channels/%s/messages?limit=%d"
	fetchLimit       = 5
	salesCacheKey    = "discord:sales"
	freeScCacheKey   = "discord:free-sc"
)

// apiMessage mirrors the Discord REST message object, narrowed to the fields
// the feeds display.
type apiMessage struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  struct {
		Username string `json:"username"`
	} `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type discordServiceImpl struct {
	cfg    *config.DiscordConfig
	client *http.Client
	rdb    *redis.Client
	logger *logger.Logger
}

// NewDiscordService creates the scraped community-feed client. A nil redis
// client disables caching; fetch errors always surface to the caller
// unretried.
func NewDiscordService(cfg *config.DiscordConfig, rdb *redis.Client, logger *logger.Logger) domain.DiscordService {
	return &discordServiceImpl{
		cfg: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		rdb:    rdb,
		logger: logger,
	}
}

// LatestSales returns the newest messages from the sales announcement
// channel, served from cache when a fresh copy exists.
func (s *discordServiceImpl) LatestSales(ctx context.Context) ([]domain.DiscordMessage, error) {
	return s.latest(ctx, s.cfg.SalesChannelID, salesCacheKey)
}

// LatestFreeSc returns the newest messages from the free-SC drop channel.
func (s *discordServiceImpl) LatestFreeSc(ctx context.Context) ([]domain.DiscordMessage, error) {
	return s.latest(ctx, s.cfg.FreeScChannelID, freeScCacheKey)
}

func (s *discordServiceImpl) latest(ctx context.Context, channelID, cacheKey string) ([]domain.DiscordMessage, error) {
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	messages, err := s.fetch(ctx, channelID)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, messages)
	return messages, nil
}

func (s *discordServiceImpl) fetch(ctx context.Context, channelID string) ([]domain.DiscordMessage, error) {
	endpoint := fmt.Sprintf(messagesEndpoint, channelID, fetchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+s.cfg.BotToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discord request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discord api error: unexpected status %d - %s", resp.StatusCode, string(respBody))
	}

	var raw []apiMessage
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	messages := make([]domain.DiscordMessage, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, domain.DiscordMessage{
			ID:             m.ID,
			Content:        m.Content,
			AuthorUsername: m.Author.Username,
			Timestamp:      m.Timestamp,
		})
	}
	return messages, nil
}

func (s *discordServiceImpl) fromCache(ctx context.Context, cacheKey string) ([]domain.DiscordMessage, bool) {
	if s.rdb == nil {
		return nil, false
	}

	data, err := s.rdb.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("Failed to read discord feed cache", zap.Error(err))
		return nil, false
	}

	var messages []domain.DiscordMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		s.logger.Warn("Failed to decode discord feed cache", zap.Error(err))
		return nil, false
	}
	return messages, true
}

func (s *discordServiceImpl) toCache(ctx context.Context, cacheKey string, messages []domain.DiscordMessage) {
	if s.rdb == nil {
		return
	}

	data, err := json.Marshal(messages)
	if err != nil {
		s.logger.Warn("Failed to encode discord feed cache", zap.Error(err))
		return
	}

	ttl := s.cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	if err := s.rdb.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
		s.logger.Warn("Failed to write discord feed cache", zap.Error(err))
	}
}
