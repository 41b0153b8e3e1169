package models

import "time"

// Document types are the external representation of each model. The
// object graph is cyclic (Game has Reviews, a Review has a Game and a
// User, a User has Reviews), so each document is shaped as a tree by
// omitting exactly three back-edges: a review nested under its game
// carries no game, a review nested under its user carries no user, and
// the game/user nested directly under a review carry no reviews. The
// rules hold at every nesting level, so a game document still shows
// each review's user together with that user's other reviews; a branch
// ends in a bare ref once the only relation left would re-render a
// record already shown above it.

// GameRef is a game without its reviews, the leaf form of a game.
type GameRef struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Genre     string    `json:"genre"`
	Platform  string    `json:"platform"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRef is a user without their reviews, the leaf form of a user.
type UserRef struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameDocument is a game with its reviews; each review shows its user
// and that user's reviews.
type GameDocument struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Genre     string       `json:"genre"`
	Platform  string       `json:"platform"`
	Price     int          `json:"price"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Reviews   []GameReview `json:"reviews"`
}

// GameReview is a review nested under its game.
type GameReview struct {
	ID        uint          `json:"id"`
	Score     int           `json:"score"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	GameID    uint          `json:"game_id"`
	UserID    uint          `json:"user_id"`
	User      *GameReviewer `json:"user,omitempty"`
}

// GameReviewer is a user nested under a game's review, shown with
// their reviews.
type GameReviewer struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Reviews   []ReviewerReview `json:"reviews"`
}

// ReviewerReview is a review nested under a reviewer: no user
// back-edge, and the game it covers as a bare ref.
type ReviewerReview struct {
	ID        uint      `json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	GameID    uint      `json:"game_id"`
	UserID    uint      `json:"user_id"`
	Game      *GameRef  `json:"game,omitempty"`
}

// UserDocument is a user with their reviews; each review shows its
// game and that game's reviews.
type UserDocument struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Reviews   []UserReview `json:"reviews"`
}

// UserReview is a review nested under its user.
type UserReview struct {
	ID        uint          `json:"id"`
	Score     int           `json:"score"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	GameID    uint          `json:"game_id"`
	UserID    uint          `json:"user_id"`
	Game      *ReviewedGame `json:"game,omitempty"`
}

// ReviewedGame is a game nested under a user's review, shown with its
// reviews.
type ReviewedGame struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	Genre     string               `json:"genre"`
	Platform  string               `json:"platform"`
	Price     int                  `json:"price"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	Reviews   []ReviewedGameReview `json:"reviews"`
}

// ReviewedGameReview is a review nested under a reviewed game: no game
// back-edge, and the user who wrote it as a bare ref.
type ReviewedGameReview struct {
	ID        uint      `json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	GameID    uint      `json:"game_id"`
	UserID    uint      `json:"user_id"`
	User      *UserRef  `json:"user,omitempty"`
}

// ReviewDocument is a review with both of the records it joins; the
// nested game and user drop their reviews, the two back-edges named
// for reviews.
type ReviewDocument struct {
	ID        uint      `json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	GameID    uint      `json:"game_id"`
	UserID    uint      `json:"user_id"`
	Game      *GameRef  `json:"game,omitempty"`
	User      *UserRef  `json:"user,omitempty"`
}

func newGameRef(g Game) *GameRef {
	return &GameRef{
		ID:        g.ID,
		Title:     g.Title,
		Genre:     g.Genre,
		Platform:  g.Platform,
		Price:     g.Price,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func newUserRef(u User) *UserRef {
	return &UserRef{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newGameReviewer(u User) *GameReviewer {
	reviews := make([]ReviewerReview, 0, len(u.Reviews))
	for _, r := range u.Reviews {
		rr := ReviewerReview{
			ID:        r.ID,
			Score:     r.Score,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			GameID:    r.GameID,
			UserID:    r.UserID,
		}
		if r.Game != nil {
			rr.Game = newGameRef(*r.Game)
		}
		reviews = append(reviews, rr)
	}

	return &GameReviewer{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Reviews:   reviews,
	}
}

func newReviewedGame(g Game) *ReviewedGame {
	reviews := make([]ReviewedGameReview, 0, len(g.Reviews))
	for _, r := range g.Reviews {
		rr := ReviewedGameReview{
			ID:        r.ID,
			Score:     r.Score,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			GameID:    r.GameID,
			UserID:    r.UserID,
		}
		if r.User != nil {
			rr.User = newUserRef(*r.User)
		}
		reviews = append(reviews, rr)
	}

	return &ReviewedGame{
		ID:        g.ID,
		Title:     g.Title,
		Genre:     g.Genre,
		Platform:  g.Platform,
		Price:     g.Price,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Reviews:   reviews,
	}
}

// NewGameDocument builds the external representation of a game. The
// game's reviews, their users, and those users' reviews with games
// must be preloaded.
func NewGameDocument(g Game) GameDocument {
	reviews := make([]GameReview, 0, len(g.Reviews))
	for _, r := range g.Reviews {
		gr := GameReview{
			ID:        r.ID,
			Score:     r.Score,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			GameID:    r.GameID,
			UserID:    r.UserID,
		}
		if r.User != nil {
			gr.User = newGameReviewer(*r.User)
		}
		reviews = append(reviews, gr)
	}

	return GameDocument{
		ID:        g.ID,
		Title:     g.Title,
		Genre:     g.Genre,
		Platform:  g.Platform,
		Price:     g.Price,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Reviews:   reviews,
	}
}

// NewUserDocument builds the external representation of a user. The
// user's reviews, their games, and those games' reviews with users
// must be preloaded.
func NewUserDocument(u User) UserDocument {
	reviews := make([]UserReview, 0, len(u.Reviews))
	for _, r := range u.Reviews {
		ur := UserReview{
			ID:        r.ID,
			Score:     r.Score,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			GameID:    r.GameID,
			UserID:    r.UserID,
		}
		if r.Game != nil {
			ur.Game = newReviewedGame(*r.Game)
		}
		reviews = append(reviews, ur)
	}

	return UserDocument{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Reviews:   reviews,
	}
}

// NewReviewDocument builds the external representation of a review.
// The review's game and user must be preloaded.
func NewReviewDocument(r Review) ReviewDocument {
	doc := ReviewDocument{
		ID:        r.ID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		GameID:    r.GameID,
		UserID:    r.UserID,
	}
	if r.Game != nil {
		doc.Game = newGameRef(*r.Game)
	}
	if r.User != nil {
		doc.User = newUserRef(*r.User)
	}
	return doc
}
