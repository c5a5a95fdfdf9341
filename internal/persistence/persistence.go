// Package persistence loads and saves the portfolio document to a single
// durable key-value slot.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/folio/internal/models"
)

// Slot is a durable key-value cell holding one serialized document
type Slot interface {
	// Get returns the stored bytes, or ErrSlotEmpty
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the stored bytes
	Put(ctx context.Context, key string, value []byte) error
}

// Adapter reads and writes the portfolio document under one key
type Adapter struct {
	slot Slot
	key  string
}

// NewAdapter creates an adapter over slot using key
func NewAdapter(slot Slot, key string) *Adapter {
	if key == "" {
		key = models.DefaultSlotKey
	}
	return &Adapter{slot: slot, key: key}
}

// Key returns the slot key used by the adapter
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the stored document. A missing, unreadable or corrupt slot
// yields the default empty document; the cause is logged, never returned.
func (a *Adapter) Load(ctx context.Context) models.Portfolio {
	data, err := a.slot.Get(ctx, a.key)
	if errors.Is(err, ErrSlotEmpty) {
		return models.DefaultPortfolio()
	}
	if err != nil {
		slog.Error("failed to read stored portfolio, starting empty", "key", a.key, "error", err)
		return models.DefaultPortfolio()
	}

	doc, err := Decode(data)
	if err != nil {
		slog.Error("failed to parse saved portfolio data", "error", &ParseError{Key: a.key, Err: err})
		return models.DefaultPortfolio()
	}
	return doc
}

// Save serializes the full document and overwrites the slot
func (a *Adapter) Save(ctx context.Context, doc models.Portfolio) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := a.slot.Put(ctx, a.key, data); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

// Encode serializes a document with stable 2-space indentation
func Encode(doc models.Portfolio) ([]byte, error) {
	data, err := json.MarshalIndent(doc.Normalize(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode portfolio: %w", err)
	}
	return data, nil
}

// Decode parses bytes written by Encode. Anything that is not a single JSON
// object, or whose projects lack unique IDs, is rejected.
func Decode(data []byte) (models.Portfolio, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Portfolio{}, errors.New("document is not a JSON object")
	}

	var doc models.Portfolio
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&doc); err != nil {
		return models.Portfolio{}, err
	}
	if dec.More() {
		return models.Portfolio{}, errors.New("trailing data after document")
	}
	if err := doc.Validate(); err != nil {
		return models.Portfolio{}, err
	}
	return doc.Normalize(), nil
}
