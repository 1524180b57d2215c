package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrInvalidBody marks a request body that is not a JSON object of the
// expected shape.
var ErrInvalidBody = errors.New("invalid request body")

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func MapError(err error) (int, ErrorResponse) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &syntaxErr):
		return http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody.Error(), Details: syntaxErr.Error()}
	case errors.As(err, &typeErr):
		return http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody.Error(), Details: typeErr.Error()}
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody.Error(), Details: err.Error()}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
