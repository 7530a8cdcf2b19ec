package httperr

import (
	"net/http"
	"unicode"
	"unicode/utf8"

	"click-collect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Handle maps err to a status through its error class. Client errors carry
// their own message; server errors answer with fallback.
func Handle(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback
	if status < http.StatusInternalServerError {
		msg = capitalize(err.Error())
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation), errs.Is(err, errs.ErrConflict):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
