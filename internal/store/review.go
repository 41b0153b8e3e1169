package store

import (
	"fmt"

	"gamereviews/backend/internal/models"
)

// ReviewInput carries the writable fields of a review.
type ReviewInput struct {
	Score   int
	Comment string
	GameID  uint
	UserID  uint
}

// CreateReview inserts a new review. Both the game and the user it
// joins must already exist.
func (s *Store) CreateReview(in ReviewInput) (models.Review, error) {
	if in.GameID == 0 || in.UserID == 0 {
		return models.Review{}, fmt.Errorf("%w: a review requires a game and a user", ErrConstraint)
	}
	if _, err := s.GetGame(in.GameID); err != nil {
		return models.Review{}, fmt.Errorf("%w: game %d does not exist", ErrConstraint, in.GameID)
	}
	if _, err := s.GetUser(in.UserID); err != nil {
		return models.Review{}, fmt.Errorf("%w: user %d does not exist", ErrConstraint, in.UserID)
	}

	review := models.Review{
		Score:   in.Score,
		Comment: in.Comment,
		GameID:  in.GameID,
		UserID:  in.UserID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return models.Review{}, translate(err)
	}
	return review, nil
}

// GetReview fetches a review by ID.
func (s *Store) GetReview(id uint) (models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		return models.Review{}, translate(err)
	}
	return review, nil
}

// UpdateReview replaces a review's score and comment and refreshes its
// updated-at timestamp. The game and user it joins never change; a
// differently-paired review is a different review.
func (s *Store) UpdateReview(id uint, score int, comment string) (models.Review, error) {
	review, err := s.GetReview(id)
	if err != nil {
		return models.Review{}, err
	}

	review.Score = score
	review.Comment = comment

	if err := s.db.Save(&review).Error; err != nil {
		return models.Review{}, translate(err)
	}
	return review, nil
}

// DeleteReview removes a review.
func (s *Store) DeleteReview(id uint) error {
	result := s.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetReviewDocument serializes a review with the game and user it
// joins.
func (s *Store) GetReviewDocument(id uint) (models.ReviewDocument, error) {
	var review models.Review
	if err := s.db.Preload("Game").Preload("User").First(&review, id).Error; err != nil {
		return models.ReviewDocument{}, translate(err)
	}
	return models.NewReviewDocument(review), nil
}
