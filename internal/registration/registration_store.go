package registration

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	registrationerrors "transferdesk/internal/registration/errors"

	"github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix = "registration:draft:"
	draftTTL       = 7 * 24 * time.Hour
)

//go:generate mockgen -source=registration_store.go -destination=mock/registration_store_mock.go -package=mock
type DraftStore interface {
	Get(ctx context.Context, id string) (*Draft, error)
	Save(ctx context.Context, draft *Draft) error
	Delete(ctx context.Context, id string) error
}

type redisDraftStore struct {
	rdb *redis.Client
}

func NewDraftStore(rdb *redis.Client) DraftStore {
	return &redisDraftStore{rdb: rdb}
}

func (s *redisDraftStore) Get(ctx context.Context, id string) (*Draft, error) {
	raw, err := s.rdb.Get(ctx, draftKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, registrationerrors.ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Save refreshes the TTL on every write; an actively edited draft never
// expires mid-session.
func (s *redisDraftStore) Save(ctx context.Context, draft *Draft) error {
	draft.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKeyPrefix+draft.ID, raw, draftTTL).Err()
}

func (s *redisDraftStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, draftKeyPrefix+id).Err()
}
