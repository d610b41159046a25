package postgres

import (
	"context"
	"regexp"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gorm.io/gorm"
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

// store is one unit of work over a single table. Reads go straight to the
// engine; mutations are staged and replayed inside a single transaction by
// Commit, so a rejected batch rolls back as a whole.
type store[T any] struct {
	db     *gorm.DB
	staged []operation[T]
}

func newStore[T any](db *gorm.DB) *store[T] {
	return &store[T]{db: db}
}

func (s *store[T]) GetAll(ctx context.Context) ([]*T, error) {
	var records []*T
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}

func (s *store[T]) Find(ctx context.Context, conds ...repository.Condition) (*T, error) {
	tx, err := applyConditions(s.db.WithContext(ctx), conds)
	if err != nil {
		return nil, err
	}

	var record T
	if err := tx.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	return &record, nil
}

func (s *store[T]) FindMany(ctx context.Context, conds ...repository.Condition) ([]*T, error) {
	tx, err := applyConditions(s.db.WithContext(ctx), conds)
	if err != nil {
		return nil, err
	}

	var records []*T
	if err := tx.Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find records")
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

	s.staged = append(s.staged, operation[T]{kind: kind, record: record})

	return nil
}

// Commit replays the staged batch inside one database transaction.
func (s *store[T]) Commit(ctx context.Context) error {
	if len(s.staged) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range s.staged {
			var err error
			switch op.kind {
			case opInsert:
				err = tx.Create(op.record).Error
			case opUpdate:
				err = tx.Save(op.record).Error
			case opDelete:
				err = tx.Delete(op.record).Error
			}
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, constraintDetails(err))
	}

	s.staged = nil

	return nil
}

// columnPattern restricts condition columns to plain identifiers; conditions
// carry caller-controlled column names into SQL text.
var columnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func applyConditions(tx *gorm.DB, conds []repository.Condition) (*gorm.DB, error) {
	for _, cond := range conds {
		clause, err := conditionClause(cond)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(clause, cond.Value)
	}

	return tx, nil
}

func conditionClause(cond repository.Condition) (string, error) {
	if !columnPattern.MatchString(cond.Column) {
		return "", errors.Errorf("invalid condition column %q", cond.Column)
	}
	if cond.Operator != "=" {
		return "", errors.Errorf("unsupported condition operator %q", cond.Operator)
	}

	return cond.Column + " = ?", nil
}
