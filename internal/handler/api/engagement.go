package api

import (
	"net/http"

	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorites
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.FavoriteResponse
// @Failure 401 {object} httperr.Response
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch favorites")
		return
	}
	res, err := resdto.FromList[resdto.FavoriteResponse](views)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch favorites")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add favorite
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /favorites/{productId} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}
	id, err := h.cmds.Add(c.Request.Context(), userID, productID)
	if err != nil {
		httperr.Handle(c, err, "Failed to add favorite")
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id.String()})
}

// @Summary Remove favorite
// @Tags favorites
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 204 "No Content"
// @Router /favorites/{productId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), userID, productID); err != nil {
		httperr.Handle(c, err, "Failed to remove favorite")
		return
	}
	c.Status(http.StatusNoContent)
}
