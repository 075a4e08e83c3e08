package handlers

import (
	"errors"
	"io"
	"net/http"

	request "mercadopago_provider/internal/adapter/http/dto/request"
	response "mercadopago_provider/internal/adapter/http/dto/response"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentSessionHandler exposes the cart payment session to the storefront.
type PaymentSessionHandler struct {
	usecase         usecase.ICartUseCase
	defaultProvider string
}

func NewPaymentSessionHandler(uc usecase.ICartUseCase, defaultProvider string) *PaymentSessionHandler {
	return &PaymentSessionHandler{usecase: uc, defaultProvider: defaultProvider}
}

// CreatePaymentSession godoc
// @Summary      Initialise the cart payment session
// @Tags         payment-session
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                          true   "Cart id"
// @Param        body     body  request.PaymentSessionRequest   false  "Provider selection"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/carts/{cart_id}/payment-session [post]
func (h *PaymentSessionHandler) CreatePaymentSession(c *gin.Context) {
	cartID := c.Param("cart_id")

	var payload request.PaymentSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	providerID := payload.ResolveProviderID(h.defaultProvider)

	cart, err := h.usecase.SetPaymentSession(c.Request.Context(), cartID, providerID)
	if err != nil {
		writeError(c, "set-payment-session", err)
		return
	}
	logger.FromCtx(c.Request.Context()).Info("[payment-session][handler] session set",
		zap.String("cart_id", cart.ID), zap.String("provider_id", providerID))

	c.JSON(http.StatusOK, response.FromCart(cart))
}

// UpdatePaymentSession godoc
// @Summary      Push the current cart to the payment session
// @Tags         payment-session
// @Produce      json
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /v1/carts/{cart_id}/payment-session [put]
func (h *PaymentSessionHandler) UpdatePaymentSession(c *gin.Context) {
	cart, err := h.usecase.UpdatePaymentSession(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeError(c, "update-payment-session", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// GetPaymentSessionStatus godoc
// @Summary      Refresh and return the payment session status
// @Tags         payment-session
// @Produce      json
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  response.PaymentSessionStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/carts/{cart_id}/payment-session/status [get]
func (h *PaymentSessionHandler) GetPaymentSessionStatus(c *gin.Context) {
	cart, err := h.usecase.RefreshPaymentSession(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeError(c, "refresh-payment-session", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSessionStatus(cart))
}
