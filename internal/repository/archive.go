package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nettictactoe/backend/internal/server"
)

var ErrResultNotFound = errors.New("match result not found")

const (
	resultKeyPrefix  = "result:"
	finishedCountKey = "stats:matches-finished"
)

// ArchiveRepository stores finished-match results. Live room and session
// state never touches storage; only terminal outcomes are recorded.
type ArchiveRepository interface {
	RecordResult(ctx context.Context, result server.MatchResult) error
	GetResult(ctx context.Context, roomID string) (*server.MatchResult, error)
	FinishedCount(ctx context.Context) (int64, error)
}

type dbArchive struct {
	client *redis.Client
}

func NewArchiveRepository(client *redis.Client) ArchiveRepository {
	return &dbArchive{
		client: client,
	}
}

func (that *dbArchive) RecordResult(ctx context.Context, result server.MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal match result: %w", err)
	}

	resultKey := resultKeyPrefix + result.RoomID
	if err = that.client.Set(ctx, resultKey, resultJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match result: %w", err)
	}

	if err = that.client.Incr(ctx, finishedCountKey).Err(); err != nil {
		return fmt.Errorf("failed to increment finished counter: %w", err)
	}

	return nil
}

func (that *dbArchive) GetResult(ctx context.Context, roomID string) (*server.MatchResult, error) {
	resultKey := resultKeyPrefix + roomID

	response, err := that.client.Get(ctx, resultKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	var result server.MatchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}

	return &result, nil
}

func (that *dbArchive) FinishedCount(ctx context.Context) (int64, error) {
	count, err := that.client.Get(ctx, finishedCountKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get finished counter: %w", err)
	}

	return count, nil
}
