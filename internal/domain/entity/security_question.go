// Package entity contains the domain entities of the SpendWise application.
package entity

import "time"

// SecurityQuestion is one entry of the account-recovery question catalogue.
type SecurityQuestion struct {
	ID   uint
	Text string
}

// SecurityAnswer stores a user's hashed answer to their chosen recovery
// question. A user keeps at most one answer on file.
type SecurityAnswer struct {
	ID         uint
	UserID     uint
	QuestionID uint
	AnswerHash string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSecurityAnswer creates a new SecurityAnswer entity.
func NewSecurityAnswer(userID, questionID uint, answerHash string) *SecurityAnswer {
	now := time.Now().UTC()
	return &SecurityAnswer{
		UserID:     userID,
		QuestionID: questionID,
		AnswerHash: answerHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SecurityQuestionCatalogue returns the questions offered at registration.
// Seeded at startup; the texts are unique.
func SecurityQuestionCatalogue() []*SecurityQuestion {
	return []*SecurityQuestion{
		{Text: "What was the name of your first pet?"},
		{Text: "In which city were you born?"},
		{Text: "What was the name of your elementary school?"},
		{Text: "What is your mother's maiden name?"},
		{Text: "What was the make of your first car?"},
	}
}
