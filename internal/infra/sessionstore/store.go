package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no session exists for a key, either because it
// never existed or because its TTL lapsed.
var ErrNotFound = errs.New("booking session not found")

// ErrStalePreview is returned when the stored session already carries a newer
// preview than the one being saved.
var ErrStalePreview = errs.New("preview superseded by a newer response")

// Store keeps booking sessions in Redis, JSON-encoded with a TTL comfortably
// past the payment deadline. A secondary key maps backend booking IDs to the
// session that created them so the payment-proof proxy can find its session.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, cfg config.SessionConfig) *Store {
	return &Store{rdb: rdb, ttl: cfg.TTL}
}

func sessionKey(id uuid.UUID) string {
	return "booking:session:" + id.String()
}

func bookingKey(bookingID int64) string {
	return fmt.Sprintf("booking:by-id:%d", bookingID)
}

func seqKey(id uuid.UUID) string {
	return "booking:session:" + id.String() + ":seq"
}

func (s *Store) Save(ctx context.Context, session *booking.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}

	if err := s.rdb.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save session")
	}

	if session.Result != nil {
		if err := s.rdb.Set(ctx, bookingKey(session.Result.ID), session.ID.String(), s.ttl).Err(); err != nil {
			return errs.Wrap(err, "failed to index session by booking id")
		}
	}
	return nil
}

// Two overlapping preview requests both load the session before either one
// writes, so the staleness comparison has to happen against the stored copy
// at write time. The script compares sequence numbers and sets atomically.
const savePreviewIfNewerScript = `
local stored = redis.call('GET', KEYS[1])
if stored then
	local current = cjson.decode(stored)
	if tonumber(current.preview_seq or 0) > tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`

// SavePreviewIfNewer persists a session unless a concurrent writer has
// already stored one with a higher preview sequence, in which case the write
// is dropped and ErrStalePreview returned.
func (s *Store) SavePreviewIfNewer(ctx context.Context, session *booking.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}

	saved, err := s.rdb.Eval(ctx, savePreviewIfNewerScript,
		[]string{sessionKey(session.ID)},
		data, session.PreviewSeq, s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return errs.Wrap(err, "failed to save preview")
	}
	if saved == 0 {
		return ErrStalePreview
	}
	return nil
}

func (s *Store) Find(ctx context.Context, id uuid.UUID) (*booking.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to load session")
	}

	var session booking.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errs.Wrap(err, "failed to decode session")
	}
	return &session, nil
}

func (s *Store) FindByBookingID(ctx context.Context, bookingID int64) (*booking.Session, error) {
	raw, err := s.rdb.Get(ctx, bookingKey(bookingID)).Result()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve booking id")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt booking id index")
	}
	return s.Find(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, sessionKey(id), seqKey(id)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete session")
	}
	return nil
}

// NextPreviewSeq hands out monotonically increasing sequence numbers for
// price-preview requests. Allocating in Redis keeps the ordering stable even
// with more than one gateway instance behind a load balancer.
func (s *Store) NextPreviewSeq(ctx context.Context, id uuid.UUID) (uint64, error) {
	seq, err := s.rdb.Incr(ctx, seqKey(id)).Result()
	if err != nil {
		return 0, errs.Wrap(err, "failed to allocate preview sequence")
	}
	if err := s.rdb.Expire(ctx, seqKey(id), s.ttl).Err(); err != nil {
		return 0, errs.Wrap(err, "failed to refresh preview sequence ttl")
	}
	return uint64(seq), nil
}
