// Package cache keeps short-lived conversational state in Redis so the chat
// surface survives server restarts without touching the player store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"systemfit/leveling-app/internal/generator"
)

const (
	historyKeyPrefix = "chat_history:"
	historyTTL       = 24 * time.Hour
	// Keep the prompt context bounded; older turns age out of the list.
	maxHistoryTurns = 40
)

// ChatHistory stores per-user coaching conversation turns.
type ChatHistory struct {
	client *redis.Client
}

func NewChatHistory(client *redis.Client) *ChatHistory {
	return &ChatHistory{client: client}
}

// Append records one turn at the tail of the user's history, trims the list
// to the turn cap and refreshes the TTL.
func (c *ChatHistory) Append(ctx context.Context, username string, turn generator.ChatTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return err
	}

	key := historyKeyPrefix + username
	pipe := c.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -maxHistoryTurns, -1)
	pipe.Expire(ctx, key, historyTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Get returns the stored turns in conversation order. A missing key is an
// empty history, not an error.
func (c *ChatHistory) Get(ctx context.Context, username string) ([]generator.ChatTurn, error) {
	raw, err := c.client.LRange(ctx, historyKeyPrefix+username, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	turns := make([]generator.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn generator.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			continue // skip entries written by incompatible versions
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Clear drops the user's history.
func (c *ChatHistory) Clear(ctx context.Context, username string) error {
	return c.client.Del(ctx, historyKeyPrefix+username).Err()
}
