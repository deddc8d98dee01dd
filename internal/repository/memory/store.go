// Package memory is an in-process storage driver backed by go-cache. It honours
// the same contracts as the gorm repositories, including the unique email.
package memory

import (
	"sort"
	"sync"
	"time"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type Store struct {
	users       *table[entity.User]
	notebooks   *table[entity.Notebook]
	annotations *table[entity.Annotation]

	// serializes the email uniqueness check with the write that follows it
	userWrites sync.Mutex
}

func NewStore() *Store {
	return &Store{
		users:       newTable[entity.User](),
		notebooks:   newTable[entity.Notebook](),
		annotations: newTable[entity.Annotation](),
	}
}

type record[T any] struct {
	seq   uint64
	value T
}

// table keeps insertion order so FindAll is stable across calls.
type table[T any] struct {
	items *cache.Cache
	mu    sync.Mutex
	seq   uint64
}

func newTable[T any]() *table[T] {
	// No expiration and no janitor: entries live until deleted.
	return &table[T]{items: cache.New(cache.NoExpiration, 0)}
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	if x, found := t.items.Get(id.String()); found {
		return x.(record[T]).value, true
	}
	var zero T
	return zero, false
}

func (t *table[T]) put(id uuid.UUID, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := id.String()
	if x, found := t.items.Get(key); found {
		t.items.Set(key, record[T]{seq: x.(record[T]).seq, value: v}, cache.NoExpiration)
		return
	}
	t.seq++
	t.items.Set(key, record[T]{seq: t.seq, value: v}, cache.NoExpiration)
}

func (t *table[T]) exists(id uuid.UUID) bool {
	_, found := t.items.Get(id.String())
	return found
}

func (t *table[T]) remove(id uuid.UUID) {
	t.items.Delete(id.String())
}

func (t *table[T]) all() []T {
	items := t.items.Items()
	records := make([]record[T], 0, len(items))
	for _, item := range items {
		records = append(records, item.Object.(record[T]))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	values := make([]T, len(records))
	for i, r := range records {
		values[i] = r.value
	}
	return values
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
