package diagram

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
)

// Store is the key/value slot storage a board persists into. Absent slots
// are reported with an error wrapping fs.ErrNotExist.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Load reads the layout's slot once. Absent, unreadable or malformed data
// produces an empty board; problems are logged, not returned.
func Load(ctx context.Context, store Store, layout Layout, log *zap.Logger, opts ...Option) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("diagram", layout.Name), zap.String("slot", layout.StorageKey))

	data, err := store.Get(ctx, layout.StorageKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("nothing saved yet")
		} else {
			log.Warn("read slot failed, starting empty", zap.Error(err))
		}
		return NewBoard(layout, opts...)
	}

	doc, err := Decode(data)
	if err != nil {
		log.Warn("discarding unreadable blob", zap.Error(err))
		return NewBoard(layout, opts...)
	}
	b, err := Restore(doc, layout, opts...)
	if err != nil {
		log.Warn("discarding blob", zap.Error(err))
		return NewBoard(layout, opts...)
	}
	log.Info("loaded markers", zap.Int("count", b.Len()))
	return b
}

// Save writes the whole board to its slot and marks it clean.
func Save(ctx context.Context, store Store, b *Board) error {
	data, err := b.Serialize()
	if err != nil {
		return err
	}
	if err := store.Put(ctx, b.layout.StorageKey, data); err != nil {
		return fmt.Errorf("save %s: %w", b.layout.Name, err)
	}
	b.MarkClean()
	return nil
}
