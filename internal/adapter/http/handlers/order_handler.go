package handlers

import (
	"context"
	"net/http"

	request "mercadopago_provider/internal/adapter/http/dto/request"
	response "mercadopago_provider/internal/adapter/http/dto/response"
	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the admin payment operations on orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrder godoc
// @Summary      Order created from a cart
// @Tags         orders
// @Produce      json
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/orders/{cart_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	h.respond(c, "get-order", h.usecase.RetrieveByCartID)
}

// CapturePayment godoc
// @Summary      Capture the order payment
// @Tags         orders
// @Produce      json
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /v1/orders/{cart_id}/capture [post]
func (h *OrderHandler) CapturePayment(c *gin.Context) {
	h.respond(c, "capture", h.usecase.CapturePayment)
}

// RefundPayment godoc
// @Summary      Refund part or all of the order payment
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                 true  "Cart id"
// @Param        body     body  request.RefundRequest  true  "Amount in minor units"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /v1/orders/{cart_id}/refund [post]
func (h *OrderHandler) RefundPayment(c *gin.Context) {
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respond(c, "refund", func(ctx context.Context, cartID string) (entities.Order, error) {
		return h.usecase.RefundPayment(ctx, cartID, payload.Amount)
	})
}

// CancelPayment godoc
// @Summary      Cancel or refund the order payment
// @Tags         orders
// @Produce      json
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /v1/orders/{cart_id}/cancel [post]
func (h *OrderHandler) CancelPayment(c *gin.Context) {
	h.respond(c, "cancel", h.usecase.CancelPayment)
}

func (h *OrderHandler) respond(
	c *gin.Context,
	op string,
	fn func(ctx context.Context, cartID string) (entities.Order, error),
) {
	order, err := fn(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
