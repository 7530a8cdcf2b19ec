package api

import (
	"net/http"

	reqdto "click-collect/internal/handler/dto/request"
	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds  commands.OrderCommands
	q     queries.OrderQueries
	slots queries.SlotQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, slots queries.SlotQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, slots: slots}
}

// @Summary List pickup slots
// @Tags orders
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /pickup-slots [get]
func (h *OrderHandler) ListSlots(c *gin.Context) {
	views, err := h.slots.ListActive(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch pickup slots")
		return
	}
	res, err := resdto.FromList[resdto.SlotResponse](views)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch pickup slots")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Place an order
// @Description Reserves stock and one place in the pickup slot atomically
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
		return
	}

	in := req.ToInput(middleware.GetUserIDPtr(c), middleware.GetUserEmail(c))
	result, err := h.cmds.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		httperr.Handle(c, err, "Order creation failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.OrderID)
	if err != nil {
		httperr.Handle(c, err, "Failed to load order")
		return
	}
	res, err := resdto.From[resdto.OrderResponse](view)
	if err != nil {
		httperr.Handle(c, err, "Failed to load order")
		return
	}
	c.Header("Location", "/api/orders/"+result.OrderID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary List my orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch orders")
		return
	}
	res, err := resdto.FromList[resdto.OrderResponse](views)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get order
// @Description Anyone holding the id can read the order, as the confirmation page does
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch order")
		return
	}
	res, err := resdto.From[resdto.OrderResponse](view)
	if err != nil {
		httperr.Handle(c, err, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Resend order confirmation
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders/{id}/resend-confirmation [post]
func (h *OrderHandler) ResendConfirmation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.ResendConfirmation(c.Request.Context(), id, userID, middleware.GetUserEmail(c)); err != nil {
		httperr.Handle(c, err, "Failed to send email")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Confirmation email sent"})
}
