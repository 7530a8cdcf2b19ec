package api

import (
	"net/http"
	"strconv"

	"click-collect/internal/handler/httperr"
	"click-collect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.Class("invalid id", errs.ErrValidation)

// pathUUID aborts with 400 when the named path parameter is not a uuid.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt falls back to def for a missing or malformed value.
func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
