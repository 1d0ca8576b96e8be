//go:build unit

package sessionstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/pkg/config"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In the same package so the compare-and-set script can be matched verbatim.

func TestSavePreviewIfNewerStoresSession(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cfg := config.SessionConfig{TTL: 2 * time.Hour}
	store := NewStore(rdb, cfg)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := booking.NewSession(42, now)
	require.NoError(t, session.SetInputs(2, 0, "", now))
	require.True(t, session.ApplyPreview(2, booking.PricePreview{FinalPrice: 900000, Currency: "IDR"}, now))

	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectEval(savePreviewIfNewerScript,
		[]string{"booking:session:" + session.ID.String()},
		data, uint64(2), cfg.TTL.Milliseconds(),
	).SetVal(int64(1))

	require.NoError(t, store.SavePreviewIfNewer(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePreviewIfNewerDropsSupersededWrite(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cfg := config.SessionConfig{TTL: 2 * time.Hour}
	store := NewStore(rdb, cfg)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := booking.NewSession(42, now)
	require.NoError(t, session.SetInputs(2, 0, "", now))
	require.True(t, session.ApplyPreview(1, booking.PricePreview{FinalPrice: 500000, Currency: "IDR"}, now))

	data, err := json.Marshal(session)
	require.NoError(t, err)

	// The script found a stored preview_seq above ours and refused the write.
	mock.ExpectEval(savePreviewIfNewerScript,
		[]string{"booking:session:" + session.ID.String()},
		data, uint64(1), cfg.TTL.Milliseconds(),
	).SetVal(int64(0))

	err = store.SavePreviewIfNewer(context.Background(), session)
	assert.ErrorIs(t, err, ErrStalePreview)
	assert.NoError(t, mock.ExpectationsWereMet())
}
