package store

import (
	"errors"

	"gorm.io/gorm"

	"gamereviews/backend/internal/models"
)

// GameInput carries the writable fields of a game.
type GameInput struct {
	Title    string
	Genre    string
	Platform string
	Price    int
}

// CreateGame inserts a new game. The title must be unique.
func (s *Store) CreateGame(in GameInput) (models.Game, error) {
	game := models.Game{
		Title:    in.Title,
		Genre:    in.Genre,
		Platform: in.Platform,
		Price:    in.Price,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return models.Game{}, translate(err)
	}
	return game, nil
}

// GetGame fetches a game by ID.
func (s *Store) GetGame(id uint) (models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		return models.Game{}, translate(err)
	}
	return game, nil
}

// ListGames returns one page of games.
func (s *Store) ListGames(page, limit int) (Page[models.Game], error) {
	return paginate[models.Game](s.db, page, limit)
}

// UpdateGame replaces a game's writable fields and refreshes its
// updated-at timestamp.
func (s *Store) UpdateGame(id uint, in GameInput) (models.Game, error) {
	game, err := s.GetGame(id)
	if err != nil {
		return models.Game{}, err
	}

	game.Title = in.Title
	game.Genre = in.Genre
	game.Platform = in.Platform
	game.Price = in.Price

	if err := s.db.Save(&game).Error; err != nil {
		return models.Game{}, translate(err)
	}
	return game, nil
}

// DeleteGame removes a game along with its reviews.
func (s *Store) DeleteGame(id uint) error {
	result := s.db.Select("Reviews").Delete(&models.Game{ID: id})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetGameDocument serializes a game with its reviews, their users,
// and those users' other reviews.
func (s *Store) GetGameDocument(id uint) (models.GameDocument, error) {
	var game models.Game
	if err := s.db.Preload("Reviews.User.Reviews.Game").First(&game, id).Error; err != nil {
		return models.GameDocument{}, translate(err)
	}
	return models.NewGameDocument(game), nil
}

// GameReviewers returns the distinct users that reviewed the game,
// projected through its reviews. The projection is computed on read
// and never stored.
func (s *Store) GameReviewers(gameID uint) ([]models.User, error) {
	if _, err := s.GetGame(gameID); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Preload("User").Where("game_id = ?", gameID).Find(&reviews).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var users []models.User
	for _, r := range reviews {
		if r.User == nil || seen[r.User.ID] {
			continue
		}
		seen[r.User.ID] = true
		users = append(users, *r.User)
	}
	return users, nil
}

// AddReviewer links a user to a game through a review. When no review
// joins the pair yet, one is created with zero score and an empty
// comment. An existing link makes this a no-op; the returned bool
// reports whether a review was created.
func (s *Store) AddReviewer(gameID, userID uint) (models.Review, bool, error) {
	if _, err := s.GetGame(gameID); err != nil {
		return models.Review{}, false, err
	}
	if _, err := s.GetUser(userID); err != nil {
		return models.Review{}, false, err
	}

	var review models.Review
	err := s.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&review).Error
	if err == nil {
		return review, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, false, err
	}

	review = models.Review{GameID: gameID, UserID: userID}
	if err := s.db.Create(&review).Error; err != nil {
		return models.Review{}, false, translate(err)
	}
	return review, true, nil
}
