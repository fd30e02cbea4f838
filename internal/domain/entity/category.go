// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Category represents an expense category. Category names are globally unique.
type Category struct {
	ID          uint
	Name        string
	Description string
	IconURL     string
	CreatedAt   time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, description, iconURL string) *Category {
	return &Category{
		Name:        name,
		Description: description,
		IconURL:     iconURL,
		CreatedAt:   time.Now().UTC(),
	}
}
