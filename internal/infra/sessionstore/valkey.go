package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
)

// ValkeyStore keeps sessions in a Valkey-compatible database so several
// web instances can share them.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "astro"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *ValkeyStore) Load(ctx context.Context, id string) (prediction.Session, bool, error) {
	cmd := s.client.B().Get().Key(s.sessionKey(id)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return prediction.Session{}, false, nil
		}
		return prediction.Session{}, false, err
	}
	var sess prediction.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return prediction.Session{}, false, err
	}
	return sess, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, sess prediction.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.sessionKey(sess.ID)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		cmd = builder.Ex(atLeastSecond(s.ttl)).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

// Acquire uses SET NX so only one request per session and action runs at a time.
func (s *ValkeyStore) Acquire(ctx context.Context, id string, action prediction.Action, ttl time.Duration) (bool, error) {
	builder := s.client.B().Set().Key(s.inflightKey(id, action)).Value("1").Nx()
	var cmd valkey.Completed
	if ttl > 0 {
		cmd = builder.Ex(atLeastSecond(ttl)).Build()
	} else {
		cmd = builder.Build()
	}
	err := s.client.Do(ctx, cmd).Error()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ValkeyStore) Release(ctx context.Context, id string, action prediction.Action) error {
	return s.client.Do(ctx, s.client.B().Del().Key(s.inflightKey(id, action)).Build()).Error()
}

func (s *ValkeyStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

func (s *ValkeyStore) inflightKey(id string, action prediction.Action) string {
	return fmt.Sprintf("%s:inflight:%s:%s", s.prefix, id, action)
}

func atLeastSecond(ttl time.Duration) time.Duration {
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}

var _ prediction.Store = (*ValkeyStore)(nil)
