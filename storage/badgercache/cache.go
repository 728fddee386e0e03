// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badgercache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/framesift/core"
)

const keySize = 16

// Cache stores frame annotations keyed by frame identity, so repeated
// indexing runs over unchanged videos skip model inference entirely.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens an annotation cache at the given directory, creating it if
// needed. With inMemory set, the cache lives only for the process (used
// in tests).
func Open(dir string, inMemory bool) (*Cache, error) {
	logger := slog.Default().With("component", "annotation_cache")

	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation cache: %w", err)
	}

	return &Cache{db: db, logger: logger}, nil
}

// Key derives a content-based cache key from the frame identity and the
// models that produced the annotation. Changing any model invalidates all
// prior entries naturally.
func Key(videoPath string, timestamp float64, modelTag string) []byte {
	h, _ := blake2b.New(keySize, nil)
	fmt.Fprintf(h, "%s|%.3f|%s", videoPath, timestamp, modelTag)
	return h.Sum(nil)
}

// Get looks up a cached annotation. The second return value reports
// whether the key was present.
func (c *Cache) Get(key []byte) (*core.Annotation, bool, error) {
	var annotation *core.Annotation
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, _, err := core.AnnotationMUS.Unmarshal(val)
			if err != nil {
				return err
			}
			annotation = &decoded
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return annotation, true, nil
}

// Put stores an annotation under the given key.
func (c *Cache) Put(key []byte, annotation *core.Annotation) error {
	buf := make([]byte, core.AnnotationMUS.Size(*annotation))
	core.AnnotationMUS.Marshal(*annotation, buf)
	return c.db.Update(func(tx *badger.Txn) error {
		return tx.Set(key, buf)
	})
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
