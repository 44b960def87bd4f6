package utils

import (
	"net/http"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"

	"github.com/gin-gonic/gin"
)

// RespondOK sends a success outcome. Responses always carry the
// {ok, message} contract, success and failure alike.
func RespondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, contact.SubmissionOutcome{OK: true, Message: message})
}

// RespondError sends a failure outcome with the given status. The message
// comes from the fixed user-safe vocabulary, never from internal errors.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, contact.SubmissionOutcome{OK: false, Message: message})
}
