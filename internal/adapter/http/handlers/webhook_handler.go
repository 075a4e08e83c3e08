package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	response "mercadopago_provider/internal/adapter/http/dto/response"
	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	headerSignature = "x-signature"
	headerRequestID = "x-request-id"
)

// WebhookHandler receives Mercado Pago notifications.
//
// POST responses carry a status code only: 200 processed, 204 ignored action,
// 401 bad signature, 402 payment detail unavailable, 409 checkout failure.
type WebhookHandler struct {
	usecase  usecase.IWebhookUseCase
	verifier interfaces.IWebhookSignatureVerifier
}

// NewWebhookHandler builds the handler. A nil verifier disables signature checks.
func NewWebhookHandler(uc usecase.IWebhookUseCase, verifier interfaces.IWebhookSignatureVerifier) *WebhookHandler {
	return &WebhookHandler{usecase: uc, verifier: verifier}
}

// Welcome godoc
// @Summary      Webhook health
// @Tags         webhook
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /mercadopago [get]
func (h *WebhookHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: response.WelcomeMessage})
}

// Notify godoc
// @Summary      Receive a Mercado Pago notification
// @Tags         webhook
// @Accept       json
// @Param        x-signature   header  string  false  "ts=...,v1=..."
// @Param        x-request-id  header  string  false  "Mercado Pago request id"
// @Param        data.id       query   string  false  "Notified resource id"
// @Success      200
// @Success      204
// @Failure      400
// @Failure      401
// @Failure      402
// @Failure      409
// @Router       /mercadopago [post]
func (h *WebhookHandler) Notify(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := c.GetRawData()
	if err != nil {
		logger.FromCtx(ctx).Warn("[webhook][handler] body unreadable", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}
	var body entities.Data
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		logger.FromCtx(ctx).Warn("[webhook][handler] body is not a json object", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}

	if h.verifier != nil {
		dataID := c.Query("data.id")
		if dataID == "" {
			dataID = entities.AsData(body["data"]).Identifier("id")
		}
		if err := h.verifier.Verify(c.GetHeader(headerSignature), c.GetHeader(headerRequestID), dataID); err != nil {
			logger.FromCtx(ctx).Warn("[webhook][handler] signature rejected",
				zap.String("data_id", dataID), zap.Error(err))
			c.Status(http.StatusUnauthorized)
			return
		}
	}

	outcome, err := h.usecase.HandleNotification(ctx, body)
	switch {
	case errors.Is(err, usecase.ErrPaymentDetailUnavailable):
		c.Status(http.StatusPaymentRequired)
	case err != nil:
		c.Status(http.StatusConflict)
	case outcome == usecase.WebhookIgnored:
		c.Status(http.StatusNoContent)
	default:
		c.Status(http.StatusOK)
	}
}
