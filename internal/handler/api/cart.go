package api

import (
	"net/http"

	"click-collect/internal/domain/cart"
	reqdto "click-collect/internal/handler/dto/request"
	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/pkg/cookie"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// owner is the signed-in user, else the guest session header.
func owner(c *gin.Context) (cart.Owner, error) {
	return cart.NewOwner(middleware.GetUserIDPtr(c), cookie.GetSessionID(c))
}

// @Summary Get cart
// @Description The user's cart, or the guest cart named by X-Session-ID
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Guest session"
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	var ownerPtr *cart.Owner
	if o, err := owner(c); err == nil {
		ownerPtr = &o
	}
	view, err := h.q.Get(c.Request.Context(), ownerPtr)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch cart")
		return
	}
	res, err := resdto.From[resdto.CartResponse](view)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch cart")
		return
	}
	if res.Items == nil {
		res.Items = []*resdto.CartLineResponse{}
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add cart item
// @Description Adds to the quantity when the product is already in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Guest session"
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	o, err := owner(c)
	if err != nil {
		httperr.Handle(c, err, "Failed to add item")
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.AddItem(c.Request.Context(), o, req.ProductID, req.Quantity)
	if err != nil {
		httperr.Handle(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id.String()})
}

// @Summary Update cart item quantity
// @Tags cart
// @Accept json
// @Param X-Session-ID header string false "Guest session"
// @Param id path string true "Cart item ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	o, err := owner(c)
	if err != nil {
		httperr.Handle(c, err, "Failed to update item")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.UpdateItem(c.Request.Context(), o, id, req.Quantity); err != nil {
		httperr.Handle(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, resdto.IDResponse{ID: id.String()})
}

// @Summary Remove cart item
// @Tags cart
// @Param X-Session-ID header string false "Guest session"
// @Param id path string true "Cart item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	o, err := owner(c)
	if err != nil {
		httperr.Handle(c, err, "Failed to remove item")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), o, id); err != nil {
		httperr.Handle(c, err, "Failed to remove item")
		return
	}
	c.Status(http.StatusNoContent)
}
