package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"slot-booking/internal/data/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	changeTopic   = "bookings.updated"
	schemaVersion = 1
)

// document is the on-disk layout: a versioned envelope around the collection.
type document struct {
	Version  int              `json:"version"`
	Bookings []entity.Booking `json:"bookings"`
}

// Store owns the persisted booking collection and its change broadcast.
// Writes are full replacements with last-writer-wins semantics; there is no
// optimistic-concurrency check, so concurrent writers can overwrite each other.
type Store interface {
	// ReadAll returns the current collection. Missing or undecodable data
	// degrades to an empty collection, never an error.
	ReadAll() []entity.Booking

	// WriteAll replaces the whole collection, then broadcasts a change signal.
	WriteAll(bookings []entity.Booking) error

	// Subscribe delivers a payload-free signal after every write. The
	// subscriber's contract is to re-ReadAll and re-derive its view; pending
	// signals are coalesced. The channel closes when ctx is done.
	Subscribe(ctx context.Context) (<-chan struct{}, error)

	Close() error
}

type fileStore struct {
	fs     afero.Fs
	path   string
	pubsub *gochannel.GoChannel
	log    *zap.Logger
}

// NewFileStore keeps the collection in a single JSON file on the given
// filesystem and broadcasts changes over an in-process pub/sub.
func NewFileStore(fs afero.Fs, path string, log *zap.Logger) (Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 16},
		newWatermillLogger(log),
	)

	return &fileStore{
		fs:     fs,
		path:   path,
		pubsub: pubsub,
		log:    log.With(zap.String("store", "bookings")),
	}, nil
}

func (s *fileStore) ReadAll() []entity.Booking {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("Failed to read booking store, treating as empty", zap.Error(err))
		}
		return []entity.Booking{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Bookings != nil {
		return doc.Bookings
	}

	// Legacy layout: a bare JSON array of bookings.
	var bookings []entity.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		s.log.Warn("Corrupt booking store, treating as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return []entity.Booking{}
	}
	if bookings == nil {
		bookings = []entity.Booking{}
	}
	return bookings
}

func (s *fileStore) WriteAll(bookings []entity.Booking) error {
	if bookings == nil {
		bookings = []entity.Booking{}
	}

	data, err := json.Marshal(document{Version: schemaVersion, Bookings: bookings})
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("write booking store %s: %w", s.path, err)
	}

	// Fire-and-forget: a failed broadcast never fails the write.
	if err := s.pubsub.Publish(changeTopic, message.NewMessage(watermill.NewUUID(), nil)); err != nil {
		s.log.Warn("Failed to broadcast store change", zap.Error(err))
	}

	return nil
}

func (s *fileStore) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	messages, err := s.pubsub.Subscribe(ctx, changeTopic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to store changes: %w", err)
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		for msg := range messages {
			msg.Ack()
			select {
			case signals <- struct{}{}:
			default:
				// Subscriber is mid-refresh; one pending signal is enough
				// since every refresh re-reads the full collection anyway.
			}
		}
	}()

	return signals, nil
}

func (s *fileStore) Close() error {
	return s.pubsub.Close()
}
