package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamereviews/backend/internal/models"
)

// Errors returned by store operations. Storage failures that are not
// rule breaches (connection loss, aborted transactions) pass through
// unwrapped.
var (
	// ErrNotFound reports that the targeted record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint reports a broken uniqueness or
	// required-relationship rule.
	ErrConstraint = errors.New("constraint violation")
)

// Store runs all schema operations against one scoped gorm handle.
// There is no package-global session: a Store bound to a transaction
// is obtained through WithTx and released when the callback returns.
type Store struct {
	db *gorm.DB
}

// New wraps a gorm handle in a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx runs fn against a Store scoped to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Reset deletes every review, user, and game. Reviews go first so the
// join rows never dangle.
func (s *Store) Reset() error {
	all := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := all.Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := all.Delete(&models.User{}).Error; err != nil {
		return err
	}
	if err := all.Delete(&models.Game{}).Error; err != nil {
		return err
	}
	return nil
}

// translate maps gorm's translated errors onto the store's error
// kinds. Requires the connection to be opened with TranslateError.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return err
	}
}
