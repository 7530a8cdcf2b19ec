package api

import (
	"net/http"
	"time"

	"click-collect/internal/domain/order"
	reqdto "click-collect/internal/handler/dto/request"
	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Initiate payment
// @Description Returns the mock provider URL for an order
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitiatePaymentRequest true "Order and method"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/initiate [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	session, err := h.cmds.Initiate(c.Request.Context(), req.OrderID, req.Method)
	if err != nil {
		httperr.Handle(c, err, "Payment initiation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentResponse{PaymentURL: session.PaymentURL, Provider: session.Provider})
}

// @Summary Order expiration policy
// @Tags config
// @Produce json
// @Success 200 {object} resdto.PolicyResponse
// @Router /config/policy [get]
func (h *PaymentHandler) Policy(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.PolicyResponse{
		ExpirationPolicy:    order.PolicyText,
		PerishableExpiry:    int(order.PerishableHold / time.Hour),
		NonPerishableExpiry: int(order.StandardHold / time.Hour),
	})
}
