// Package session owns the live portfolio snapshot for one editing session.
// Every change goes through Dispatch or DispatchDebounced so readers always
// see a consistent document and the durable slot follows it.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/folio/internal/debounce"
	"github.com/thenoetrevino/folio/internal/events"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
)

// persister defines the storage methods needed by the store.
// This interface is private to the session layer.
type persister interface {
	Load(ctx context.Context) models.Portfolio
	Save(ctx context.Context, doc models.Portfolio) error
}

// Store holds the current snapshot. Writes are serialized; reads get clones.
type Store struct {
	mu      sync.RWMutex
	doc     models.Portfolio
	version uint64
	closed  bool

	// saveMu orders saves so an older snapshot never lands after a newer one
	saveMu sync.Mutex
	saves  int
	saved  uint64

	persist   persister
	debouncer *debounce.Debouncer
	publisher events.EventPublisher
}

// New loads the stored document and returns a store over it.
// A nil publisher gets a private broker so Subscribe still works.
func New(ctx context.Context, p persister, publisher events.EventPublisher, window time.Duration) *Store {
	if publisher == nil {
		publisher = events.NewBroker(0)
	}
	return &Store{
		doc:       p.Load(ctx).Normalize(),
		persist:   p,
		debouncer: debounce.New(window),
		publisher: publisher,
	}
}

// Snapshot returns a copy of the current document
func (s *Store) Snapshot() models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Dispatch applies op and persists the result before returning.
// Mutation errors are returned; save failures are only logged.
func (s *Store) Dispatch(ctx context.Context, op mutation.Operation) error {
	if err := s.apply(op); err != nil {
		return err
	}
	s.save(ctx, op.Key())
	return nil
}

// DispatchDebounced applies op immediately but coalesces the save with
// other operations on the same key until the debounce window passes.
func (s *Store) DispatchDebounced(ctx context.Context, op mutation.Operation) error {
	if err := s.apply(op); err != nil {
		return err
	}
	saveCtx := context.WithoutCancel(ctx)
	key := op.Key()
	s.debouncer.Trigger(key, func() {
		s.save(saveCtx, key)
	})
	return nil
}

// Replace swaps in a whole document, as when importing an export file
func (s *Store) Replace(ctx context.Context, doc models.Portfolio) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	s.doc = doc.Clone().Normalize()
	s.version++
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventDocumentChanged, Key: "document"})
	s.save(ctx, "document")
	return nil
}

// Pending reports how many debounced saves are waiting
func (s *Store) Pending() int {
	return s.debouncer.Pending()
}

// Saves reports how many times the document was written
func (s *Store) Saves() int {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.saves
}

// Flush writes every pending debounced save now
func (s *Store) Flush(_ context.Context) {
	s.debouncer.Flush()
}

// Close rejects later dispatches, then flushes pending saves. A change
// applied before close but not yet armed on the debouncer is written too.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.Flush(ctx)
	s.debouncer.Stop()

	if s.unsaved() {
		s.save(context.WithoutCancel(ctx), "close")
	}
	return nil
}

// unsaved reports whether the snapshot is newer than the last write
func (s *Store) unsaved() bool {
	s.mu.RLock()
	version := s.version
	s.mu.RUnlock()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return version != s.saved
}

// Subscribe returns a channel of change notifications and its cancel func
func (s *Store) Subscribe() (<-chan events.Event, func()) {
	return s.publisher.Subscribe()
}

func (s *Store) apply(op mutation.Operation) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	next, err := mutation.Apply(s.doc, op)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	s.version++
	s.mu.Unlock()

	s.publish(events.Event{
		Type:      events.EventDocumentChanged,
		ProjectID: projectIDFromKey(op.Key()),
		Key:       op.Key(),
	})
	return nil
}

// save writes the latest snapshot, not the one that scheduled the save
func (s *Store) save(ctx context.Context, key string) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	doc, version := s.doc.Clone(), s.version
	s.mu.RUnlock()

	if err := s.persist.Save(ctx, doc); err != nil {
		slog.Error("failed to persist portfolio", "key", key, "error", err)
		return
	}
	s.saves++
	s.saved = version
	s.publish(events.Event{Type: events.EventDocumentSaved, Key: key})
}

func (s *Store) publish(event events.Event) {
	if err := s.publisher.SendEvent(event); err != nil {
		slog.Debug("failed to send event", "type", event.Type, "error", err)
	}
}

func projectIDFromKey(key string) string {
	id, ok := strings.CutPrefix(key, "project:")
	if !ok {
		return ""
	}
	return id
}
