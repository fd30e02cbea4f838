// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/spendwise/backend/internal/domain/entity"
)

// SuggestionSetModel represents the savings_suggestions table in the database.
type SuggestionSetModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	UserID      uint           `gorm:"not null;index"`
	Suggestions pq.StringArray `gorm:"type:text[];not null"`
	GeneratedAt time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the SuggestionSetModel.
func (SuggestionSetModel) TableName() string {
	return "savings_suggestions"
}

// ToEntity converts a SuggestionSetModel to a domain SuggestionSet entity.
func (m *SuggestionSetModel) ToEntity() *entity.SuggestionSet {
	return &entity.SuggestionSet{
		ID:          m.ID,
		UserID:      m.UserID,
		Suggestions: []string(m.Suggestions),
		GeneratedAt: m.GeneratedAt,
	}
}

// SuggestionSetFromEntity creates a SuggestionSetModel from a domain entity.
func SuggestionSetFromEntity(set *entity.SuggestionSet) *SuggestionSetModel {
	return &SuggestionSetModel{
		ID:          set.ID,
		UserID:      set.UserID,
		Suggestions: pq.StringArray(set.Suggestions),
		GeneratedAt: set.GeneratedAt,
	}
}
