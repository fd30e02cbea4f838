// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Expense record domain errors.
var (
	// ErrRecordNotFound is returned when an expense record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordCategoryNotFound is returned when the category of a record cannot be resolved.
	ErrRecordCategoryNotFound = errors.New("category not found")

	// ErrRecordCategoryRequired is returned when neither category id nor name is provided.
	ErrRecordCategoryRequired = errors.New("category id or name must be provided")

	// ErrInvalidRecordAmount is returned when the record amount is not positive.
	ErrInvalidRecordAmount = errors.New("invalid record amount")

	// ErrUnauthorizedRecordAccess is returned when a user is not the owner of a record.
	ErrUnauthorizedRecordAccess = errors.New("unauthorized access to record")

	// ErrInvalidReportPeriod is returned when a report is requested with an
	// unknown period or with missing period parameters.
	ErrInvalidReportPeriod = errors.New("invalid report period")
)

// RecordErrorCode defines error codes for expense record errors.
type RecordErrorCode string

const (
	ErrCodeRecordNotFound           RecordErrorCode = "REC-010001"
	ErrCodeRecordCategoryNotFound   RecordErrorCode = "REC-010002"
	ErrCodeRecordCategoryRequired   RecordErrorCode = "REC-010003"
	ErrCodeInvalidRecordAmount      RecordErrorCode = "REC-010004"
	ErrCodeUnauthorizedRecordAccess RecordErrorCode = "REC-010005"
	ErrCodeInvalidReportPeriod      RecordErrorCode = "REC-010006"
	ErrCodeRecordFieldTooLong       RecordErrorCode = "REC-010007"
)

// RecordError represents an expense record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
