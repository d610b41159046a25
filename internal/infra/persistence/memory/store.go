package memory

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

type operation[T any] struct {
	kind   opKind
	record *T
}

// store is one unit of work over a single table. Reads run against the live
// table; mutations are staged and applied by Commit under the table lock,
// validated as a whole before anything is written.
type store[T any] struct {
	table  *table[T]
	staged []operation[T]
}

func newStore[T any](t *table[T]) *store[T] {
	return &store[T]{table: t}
}

func (s *store[T]) GetAll(_ context.Context) ([]*T, error) {
	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	records := make([]*T, 0, len(s.table.rows))
	for _, row := range s.table.rows {
		records = append(records, clone(row))
	}

	return records, nil
}

func (s *store[T]) Find(_ context.Context, conds ...repository.Condition) (*T, error) {
	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	for _, row := range s.table.rows {
		ok, err := matches(row, conds)
		if err != nil {
			return nil, err
		}
		if ok {
			return clone(row), nil
		}
	}

	return nil, repository.ErrNotFound
}

func (s *store[T]) FindMany(_ context.Context, conds ...repository.Condition) ([]*T, error) {
	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	var records []*T
	for _, row := range s.table.rows {
		ok, err := matches(row, conds)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, clone(row))
		}
	}

	return records, nil
}

func (s *store[T]) Insert(record *T) error {
	return s.stage(opInsert, record)
}

func (s *store[T]) Update(record *T) error {
	return s.stage(opUpdate, record)
}

func (s *store[T]) Delete(record *T) error {
	return s.stage(opDelete, record)
}

func (s *store[T]) stage(kind opKind, record *T) error {
	if record == nil {
		return domainerrors.ErrNilEntity
	}

	s.staged = append(s.staged, operation[T]{kind: kind, record: clone(record)})

	return nil
}

// Commit applies the staged batch atomically: the whole batch is validated
// against the table before the first write, so a rejected commit changes
// nothing.
func (s *store[T]) Commit(_ context.Context) error {
	if len(s.staged) == 0 {
		return nil
	}

	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	present := make(map[uuid.UUID]bool, len(s.table.rows))
	for id := range s.table.rows {
		present[id] = true
	}

	for _, op := range s.staged {
		id := idOf(op.record)
		switch op.kind {
		case opInsert:
			if id == uuid.Nil {
				return domainerrors.NewStorageExecuteError(
					errors.New("insert requires a non-zero id"), "commit rejected")
			}
			if present[id] {
				return domainerrors.NewStorageExecuteError(
					errors.Errorf("duplicate key %s", id), "commit rejected")
			}
			present[id] = true
		case opUpdate:
			if !present[id] {
				return domainerrors.NewStorageExecuteError(
					errors.Errorf("update of unknown record %s", id), "commit rejected")
			}
		case opDelete:
			if !present[id] {
				return domainerrors.NewStorageExecuteError(
					errors.Errorf("delete of unknown record %s", id), "commit rejected")
			}
			present[id] = false
		}
	}

	for _, op := range s.staged {
		id := idOf(op.record)
		switch op.kind {
		case opInsert, opUpdate:
			s.table.rows[id] = clone(op.record)
		case opDelete:
			delete(s.table.rows, id)
		}
	}

	s.staged = nil

	return nil
}

func clone[T any](record *T) *T {
	copied := *record

	return &copied
}
