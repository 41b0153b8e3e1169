// Package seed repopulates the database with the sample data set. A
// run is a full reseed: every review, user, and game is removed before
// the new rows go in, all inside one transaction.
package seed

import (
	"log"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"

	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/store"
)

// Result reports what a reseed inserted.
type Result struct {
	Users   int
	Games   int
	Reviews int
}

var sampleGames = []store.GameInput{
	{Title: "Mega Adventure", Genre: "Survival", Platform: "XBox", Price: 30},
	{Title: "Golf Pro IV", Genre: "Sports", Platform: "PlayStation", Price: 20},
	{Title: "Dance, dance, dance", Genre: "Party", Platform: "PlayStation", Price: 7},
}

// sampleReviews pairs users and games by their insert position.
var sampleReviews = []struct {
	score   int
	comment string
	user    int
	game    int
}{
	{score: 9, comment: "Amazing action", user: 0, game: 0},
	{score: 2, comment: "Boring", user: 0, game: 1},
	{score: 5, comment: "Not enough levels", user: 1, game: 0},
	{score: -1, comment: "confusing instructions", user: 2, game: 2}, // score drawn at random
}

// Run wipes the three tables and inserts 3 users, 3 games, and 4
// reviews. Either everything commits or nothing does.
func Run(s *store.Store) (Result, error) {
	var (
		users   []models.User
		games   []models.Game
		reviews []models.Review
	)

	err := s.WithTx(func(tx *store.Store) error {
		if err := tx.Reset(); err != nil {
			return err
		}

		for i := 0; i < 3; i++ {
			user, err := tx.CreateUser(store.UserInput{Name: gofakeit.Name()})
			if err != nil {
				return err
			}
			users = append(users, user)
		}

		for _, in := range sampleGames {
			game, err := tx.CreateGame(in)
			if err != nil {
				return err
			}
			games = append(games, game)
		}

		for _, in := range sampleReviews {
			score := in.score
			if score < 0 {
				score = rand.IntN(11)
			}
			review, err := tx.CreateReview(store.ReviewInput{
				Score:   score,
				Comment: in.comment,
				GameID:  games[in.game].ID,
				UserID:  users[in.user].ID,
			})
			if err != nil {
				return err
			}
			reviews = append(reviews, review)
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// Pick a featured review per game for the log. Purely cosmetic,
	// nothing is persisted.
	pool := append([]models.Review(nil), reviews...)
	for _, game := range games {
		if len(pool) == 0 {
			break
		}
		i := rand.IntN(len(pool))
		r := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		log.Printf("Featured review for %q: %d/10 (%s)", game.Title, r.Score, r.Comment)
	}

	return Result{Users: len(users), Games: len(games), Reviews: len(reviews)}, nil
}
