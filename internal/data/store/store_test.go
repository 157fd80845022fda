package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"slot-booking/internal/data/entity"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPath = "data/bookings.json"

func newTestStore(t *testing.T) (Store, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	st, err := NewFileStore(fs, testPath, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st, fs
}

func TestReadAllMissingFile(t *testing.T) {
	st, _ := newTestStore(t)

	bookings := st.ReadAll()

	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	want := []entity.Booking{
		{
			ID:        "b1",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Date:      "2025-12-15",
			Slot:      "02:00 PM",
			Status:    entity.BookingStatusConfirmed,
			CreatedAt: time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:     "b2",
			Name:   "Bob",
			Date:   "2025-11-01",
			Slot:   "09:00 AM",
			Status: entity.BookingStatusCompleted,
		},
	}

	require.NoError(t, st.WriteAll(want))
	assert.Equal(t, want, st.ReadAll())
}

func TestWriteAllPersistsVersionedEnvelope(t *testing.T) {
	st, fs := newTestStore(t)

	require.NoError(t, st.WriteAll([]entity.Booking{{ID: "b1", Name: "Jane", Date: "2025-12-15", Slot: "02:00 PM", Status: entity.BookingStatusConfirmed}}))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "version")
	assert.Contains(t, doc, "bookings")
}

func TestWriteAllNilCollection(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.WriteAll(nil))
	assert.Empty(t, st.ReadAll())
}

func TestReadAllLegacyArrayLayout(t *testing.T) {
	st, fs := newTestStore(t)

	legacy := `[{"id":"1733820000000","name":"Jane","email":"jane@example.com","date":"2025-12-15","slot":"02:00 PM","status":"confirmed"}]`
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(legacy), 0644))

	bookings := st.ReadAll()
	require.Len(t, bookings, 1)
	assert.Equal(t, "1733820000000", bookings[0].ID)
	assert.Equal(t, "02:00 PM", bookings[0].Slot)
}

func TestReadAllCorruptFile(t *testing.T) {
	st, fs := newTestStore(t)

	require.NoError(t, afero.WriteFile(fs, testPath, []byte("not json at all"), 0644))

	bookings := st.ReadAll()
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestSubscribeSignalsOnWrite(t *testing.T) {
	st, _ := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals, err := st.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, st.WriteAll([]entity.Booking{{ID: "b1", Name: "Jane", Date: "2025-12-15", Slot: "02:00 PM", Status: entity.BookingStatusConfirmed}}))

	select {
	case _, ok := <-signals:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestSubscribeChannelClosesOnCancel(t *testing.T) {
	st, _ := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	signals, err := st.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-signals:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("signal channel not closed after cancel")
	}
}
