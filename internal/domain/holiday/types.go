package holiday

import "errors"

var ErrInvalidCategory = errors.New("invalid package category")

type Category string

const (
	CategoryBeach     Category = "beach"
	CategoryAdventure Category = "adventure"
	CategoryCultural  Category = "cultural"
	CategoryWildlife  Category = "wildlife"
	CategoryHoneymoon Category = "honeymoon"
	CategoryFamily    Category = "family"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBeach, CategoryAdventure, CategoryCultural, CategoryWildlife, CategoryHoneymoon, CategoryFamily:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", ErrInvalidCategory
	}
	return category, nil
}
