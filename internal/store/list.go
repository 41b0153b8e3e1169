package store

import "gorm.io/gorm"

// PageMeta describes where a page sits within the full result set.
type PageMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// Page is one page of records plus its metadata.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func newPage[T any](data []T, totalItems int64, page, limit int) Page[T] {
	if limit <= 0 {
		limit = 1
	}
	return Page[T]{
		Data: data,
		Meta: PageMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + limit - 1) / limit,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// paginate executes a paginated query and returns the results.
func paginate[T any](db *gorm.DB, page, limit int) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	var totalItems int64
	if err := db.Model(new(T)).Count(&totalItems).Error; err != nil {
		return Page[T]{}, err
	}

	var results []T
	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return Page[T]{}, err
	}

	return newPage(results, totalItems, page, limit), nil
}
