package i18n

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents an HTTP status code
type ErrorCode int

const (
	ErrorBadRequest     ErrorCode = http.StatusBadRequest
	ErrorUnauthorized   ErrorCode = http.StatusUnauthorized
	ErrorNotFound       ErrorCode = http.StatusNotFound
	ErrorInternalServer ErrorCode = http.StatusInternalServerError
)

// I18nError represents an internationalized error
type I18nError struct {
	// MessageID is the key used for translation lookup
	MessageID string
	// Data holds template parameters for the message
	Data map[string]any
}

// New creates a new I18nError with the given message ID
func New(messageID string) *I18nError {
	return &I18nError{MessageID: messageID}
}

// Error renders the message in the default language
func (e *I18nError) Error() string {
	if t := GetTranslator(); t != nil {
		return t.Translate(e.MessageID, t.defaultLang.String(), e.Data)
	}
	return e.MessageID
}

// ErrorWithCode is an error with the HTTP status used in API responses
type ErrorWithCode struct {
	*I18nError
	Code ErrorCode
}

// NewErrorWithCode creates a new error with a code
func NewErrorWithCode(messageID string, code ErrorCode) *ErrorWithCode {
	return &ErrorWithCode{
		I18nError: New(messageID),
		Code:      code,
	}
}

// WithParam returns a copy carrying one more template parameter
func (e *ErrorWithCode) WithParam(key string, value any) *ErrorWithCode {
	data := make(map[string]any, len(e.Data)+1)
	for k, v := range e.Data {
		data[k] = v
	}
	data[key] = value
	return &ErrorWithCode{
		I18nError: &I18nError{MessageID: e.MessageID, Data: data},
		Code:      e.Code,
	}
}

// GetCode returns the error code
func (e *ErrorWithCode) GetCode() ErrorCode {
	return e.Code
}

// TranslateError translates an error using the context's language preference.
// Errors outside this package collapse to the generic database message.
func TranslateError(c *gin.Context, err error) string {
	if err == nil {
		return ""
	}
	var i18nErr *I18nError
	if errors.As(err, &i18nErr) {
		return TranslateMessage(c, i18nErr.MessageID, i18nErr.Data)
	}

	var errWithCode *ErrorWithCode
	if errors.As(err, &errWithCode) {
		return TranslateMessage(c, errWithCode.MessageID, errWithCode.Data)
	}
	return TranslateMessage(c, ErrDatabase.MessageID, nil)
}
