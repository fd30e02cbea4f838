// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// SecurityQuestionModel represents the security_questions catalogue table.
type SecurityQuestionModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Text string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

// TableName returns the table name for the SecurityQuestionModel.
func (SecurityQuestionModel) TableName() string {
	return "security_questions"
}

// ToEntity converts a SecurityQuestionModel to a domain SecurityQuestion entity.
func (m *SecurityQuestionModel) ToEntity() *entity.SecurityQuestion {
	return &entity.SecurityQuestion{
		ID:   m.ID,
		Text: m.Text,
	}
}

// SecurityQuestionFromEntity creates a SecurityQuestionModel from a domain entity.
func SecurityQuestionFromEntity(question *entity.SecurityQuestion) *SecurityQuestionModel {
	return &SecurityQuestionModel{
		ID:   question.ID,
		Text: question.Text,
	}
}

// SecurityAnswerModel represents the security_answers table. The unique index
// on user_id keeps one answer per account.
type SecurityAnswerModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     uint      `gorm:"uniqueIndex;not null"`
	QuestionID uint      `gorm:"not null"`
	AnswerHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the SecurityAnswerModel.
func (SecurityAnswerModel) TableName() string {
	return "security_answers"
}

// ToEntity converts a SecurityAnswerModel to a domain SecurityAnswer entity.
func (m *SecurityAnswerModel) ToEntity() *entity.SecurityAnswer {
	return &entity.SecurityAnswer{
		ID:         m.ID,
		UserID:     m.UserID,
		QuestionID: m.QuestionID,
		AnswerHash: m.AnswerHash,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// SecurityAnswerFromEntity creates a SecurityAnswerModel from a domain entity.
func SecurityAnswerFromEntity(answer *entity.SecurityAnswer) *SecurityAnswerModel {
	return &SecurityAnswerModel{
		ID:         answer.ID,
		UserID:     answer.UserID,
		QuestionID: answer.QuestionID,
		AnswerHash: answer.AnswerHash,
		CreatedAt:  answer.CreatedAt,
		UpdatedAt:  answer.UpdatedAt,
	}
}
