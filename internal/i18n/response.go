package i18n

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a {success:false, message} envelope for err
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	statusCode := http.StatusInternalServerError
	var errWithCode *ErrorWithCode
	if errors.As(err, &errWithCode) {
		statusCode = int(errWithCode.GetCode())
	}

	c.JSON(statusCode, gin.H{
		"success": false,
		"message": TranslateError(c, err),
	})
}

// SuccessResponse builds a {success:true, ...} envelope
type SuccessResponse struct {
	StatusCode int
	MsgID      string
	Fields     gin.H
}

// Success creates a success envelope carrying a translated message
func Success(msgID string) *SuccessResponse {
	return &SuccessResponse{StatusCode: http.StatusOK, MsgID: msgID}
}

// OK creates a success envelope without a message
func OK() *SuccessResponse {
	return &SuccessResponse{StatusCode: http.StatusOK}
}

// With adds a top-level field to the envelope
func (r *SuccessResponse) With(key string, value any) *SuccessResponse {
	if r.Fields == nil {
		r.Fields = gin.H{}
	}
	r.Fields[key] = value
	return r
}

// Send writes the envelope
func (r *SuccessResponse) Send(c *gin.Context) {
	body := gin.H{"success": true}
	if r.MsgID != "" {
		body["message"] = TranslateMessage(c, r.MsgID, nil)
	}
	for k, v := range r.Fields {
		body[k] = v
	}
	c.JSON(r.StatusCode, body)
}
