package services

import (
	"errors"
	"fmt"
	"strings"

	"naebak/content-service/internal/constants"

	"gorm.io/gorm"
)

// ContentError is the typed error every service returns for expected
// failures. Handlers map Code to an HTTP status.
type ContentError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

func NewContentError(code string, err error) *ContentError {
	return &ContentError{Code: code, Message: constants.GetErrorMessage(code), Err: err}
}

func validationError(fields map[string]string) *ContentError {
	e := NewContentError(constants.ErrCodeValidation, nil)
	e.Fields = fields
	return e
}

func fieldError(field, message string) *ContentError {
	return validationError(map[string]string{field: message})
}

func notFound(entity string) *ContentError {
	e := NewContentError(constants.ErrCodeNotFound, nil)
	if entity != "" {
		e.Message = "No " + entity + " matches the given query."
	}
	return e
}

func invalidJSON(err error) *ContentError {
	return NewContentError(constants.ErrCodeInvalidJSON, err)
}

func storageError(err error) *ContentError {
	return NewContentError(constants.ErrCodeStorage, err)
}

// classifyWriteError turns a unique violation that slipped past the
// pre-checks into a 400 on field; anything else is a storage error.
func classifyWriteError(err error, field, entity string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		e := fieldError(field, alreadyExists(entity, field))
		e.Code = constants.ErrCodeDuplicate
		e.Err = err
		return e
	}
	return storageError(err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func alreadyExists(entity, field string) string {
	return entity + " with this " + strings.ReplaceAll(field, "_", " ") + " already exists."
}

func doesNotExist(id string) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", id)
}
