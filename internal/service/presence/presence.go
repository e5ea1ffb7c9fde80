// Package presence tracks ephemeral typing indicators in Redis. Flags
// live under short-TTL keys, so a crashed or disconnected client can
// never leave a thread stuck in "typing".
package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/bystrodel/backend/internal/events"
)

// typingTTL bounds how long a flag survives without the client
// re-signalling. The client refreshes it on keystrokes.
const typingTTL = 3 * time.Second

var ErrInvalidRole = errors.New("role must be client or manager")

// keyTyping returns the Redis key for one side's typing flag.
func keyTyping(threadType string, threadID uuid.UUID, role string) string {
	return fmt.Sprintf("typing:%s:%s:%s", threadType, threadID, role)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// SetTyping marks one side as typing for the TTL window.
	SetTyping(ctx context.Context, threadType string, threadID uuid.UUID, role string) error

	// ClearTyping removes the flag immediately (called when a message
	// is sent or the client reports it stopped).
	ClearTyping(ctx context.Context, threadType string, threadID uuid.UUID, role string) error

	// Typing reports both sides' current flags.
	Typing(ctx context.Context, threadType string, threadID uuid.UUID) (client, manager bool, err error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type presenceService struct {
	rdb *redis.Client
	nc  *nats.Conn
}

func New(rdb *redis.Client, nc *nats.Conn) Service {
	return &presenceService{rdb: rdb, nc: nc}
}

func (s *presenceService) SetTyping(ctx context.Context, threadType string, threadID uuid.UUID, role string) error {
	if err := validRole(role); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, keyTyping(threadType, threadID, role), "1", typingTTL).Err(); err != nil {
		return fmt.Errorf("set typing flag: %w", err)
	}
	s.publish(threadType, threadID, role, true)
	return nil
}

func (s *presenceService) ClearTyping(ctx context.Context, threadType string, threadID uuid.UUID, role string) error {
	if err := validRole(role); err != nil {
		return err
	}
	deleted, err := s.rdb.Del(ctx, keyTyping(threadType, threadID, role)).Result()
	if err != nil {
		return fmt.Errorf("clear typing flag: %w", err)
	}
	if deleted > 0 {
		s.publish(threadType, threadID, role, false)
	}
	return nil
}

func (s *presenceService) Typing(ctx context.Context, threadType string, threadID uuid.UUID) (bool, bool, error) {
	res, err := s.rdb.Exists(ctx,
		keyTyping(threadType, threadID, "client"),
		keyTyping(threadType, threadID, "manager"),
	).Result()
	if err != nil {
		return false, false, fmt.Errorf("check typing flags: %w", err)
	}
	// Exists only counts; resolve each side when anything is set.
	if res == 0 {
		return false, false, nil
	}

	client, err := s.rdb.Exists(ctx, keyTyping(threadType, threadID, "client")).Result()
	if err != nil {
		return false, false, fmt.Errorf("check client typing: %w", err)
	}
	manager, err := s.rdb.Exists(ctx, keyTyping(threadType, threadID, "manager")).Result()
	if err != nil {
		return false, false, fmt.Errorf("check manager typing: %w", err)
	}
	return client > 0, manager > 0, nil
}

func validRole(role string) error {
	if role != "client" && role != "manager" {
		return ErrInvalidRole
	}
	return nil
}

func (s *presenceService) publish(threadType string, threadID uuid.UUID, role string, active bool) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(events.TypingEvent{
		Type:       events.KindTyping,
		ThreadType: threadType,
		ThreadID:   threadID,
		Role:       role,
		Active:     active,
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.ThreadSubject(threadType, threadID, events.KindTyping), payload)
}
