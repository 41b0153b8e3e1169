package store

import "gamereviews/backend/internal/models"

// UserInput carries the writable fields of a user.
type UserInput struct {
	Name string
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(in UserInput) (models.User, error) {
	user := models.User{Name: in.Name}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// GetUser fetches a user by ID.
func (s *Store) GetUser(id uint) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// ListUsers returns one page of users.
func (s *Store) ListUsers(page, limit int) (Page[models.User], error) {
	return paginate[models.User](s.db, page, limit)
}

// UpdateUser replaces a user's writable fields and refreshes their
// updated-at timestamp.
func (s *Store) UpdateUser(id uint, in UserInput) (models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return models.User{}, err
	}

	user.Name = in.Name

	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// DeleteUser removes a user along with their reviews.
func (s *Store) DeleteUser(id uint) error {
	result := s.db.Select("Reviews").Delete(&models.User{ID: id})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetUserDocument serializes a user with their reviews, the games
// those reviews cover, and those games' other reviews.
func (s *Store) GetUserDocument(id uint) (models.UserDocument, error) {
	var user models.User
	if err := s.db.Preload("Reviews.Game.Reviews.User").First(&user, id).Error; err != nil {
		return models.UserDocument{}, translate(err)
	}
	return models.NewUserDocument(user), nil
}
