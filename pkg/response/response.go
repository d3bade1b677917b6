// Package response writes JSON error bodies for gin handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/validation"
)

// Error answers with the status mapped from err's kind and a body of the
// form {"error": message, "code": kind}.
func Error(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	c.JSON(kind.HTTPStatus(), gin.H{
		"error": apperrors.MessageOf(err),
		"code":  string(kind),
	})
}

// BindError answers 400 for a request body or query that failed to bind.
// Field-level validation failures are listed under "fields".
func BindError(c *gin.Context, err error) {
	body := gin.H{
		"error": "invalid request",
		"code":  string(apperrors.KindValidation),
	}
	if fields := validation.Fields(err); len(fields) > 0 {
		body["fields"] = fields
	} else {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}
