package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultDraftTTL = 24 * time.Hour
	draftKeyPrefix  = "gym-draft||"
)

// DraftStore keeps composer drafts in redis, one JSON value per draft.
type DraftStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDraftStore(redisClient *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *DraftStore) Load(ctx context.Context, id string) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.drafts.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("draft.id", id))

	cmd := s.redisClient.Get(ctx, draftKeyPrefix+id)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft [%s]: %w", id, err)
	}

	var d Draft
	if err := json.Unmarshal([]byte(cmd.Val()), &d); err != nil {
		return nil, fmt.Errorf("load draft [%s], unmarshal: %w", id, err)
	}
	if d.Exercises == nil {
		d.Exercises = []Line{}
	}

	return &d, nil
}

// Store replaces the whole draft and refreshes its TTL.
func (s *DraftStore) Store(ctx context.Context, d *Draft) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.drafts.store")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("draft.id", d.ID))

	draftJson, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("store draft [%s], marshal: %w", d.ID, err)
	}

	if err := s.redisClient.Set(ctx, draftKeyPrefix+d.ID, string(draftJson), s.ttl).Err(); err != nil {
		return fmt.Errorf("store draft [%s]: %w", d.ID, err)
	}

	return nil
}

func (s *DraftStore) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.drafts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("draft.id", id))

	cmd := s.redisClient.Del(ctx, draftKeyPrefix+id)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("delete draft [%s]: %w", id, err)
	}
	if cmd.Val() == 0 {
		return ErrDraftNotFound
	}

	return nil
}
