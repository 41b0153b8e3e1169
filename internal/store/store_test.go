package store

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamereviews/backend/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every connection to :memory: is its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return New(db)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)

	errBoom := errors.New("boom")
	err := s.WithTx(func(tx *Store) error {
		if _, err := tx.CreateGame(GameInput{Title: "Mega Adventure"}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	games, err := s.ListGames(1, 10)
	require.NoError(t, err)
	require.Empty(t, games.Data)
}

func TestResetEmptiesAllTables(t *testing.T) {
	s := newTestStore(t)

	game, err := s.CreateGame(GameInput{Title: "Mega Adventure"})
	require.NoError(t, err)
	user, err := s.CreateUser(UserInput{Name: "Alice"})
	require.NoError(t, err)
	_, err = s.CreateReview(ReviewInput{Score: 9, GameID: game.ID, UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, s.Reset())

	games, err := s.ListGames(1, 10)
	require.NoError(t, err)
	require.Empty(t, games.Data)

	users, err := s.ListUsers(1, 10)
	require.NoError(t, err)
	require.Empty(t, users.Data)

	_, err = s.GetReview(1)
	require.ErrorIs(t, err, ErrNotFound)
}
