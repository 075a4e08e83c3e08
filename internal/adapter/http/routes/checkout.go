package routes

import (
	"mercadopago_provider/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhook = "/mercadopago"
	PathCarts   = "/carts"
	PathOrders  = "/orders"
)

// addWebhookRoutes registers the notification endpoint at the root, where the
// notification_url of every preference points.
func addWebhookRoutes(r gin.IRoutes, h *handlers.WebhookHandler) {
	r.GET(PathWebhook, h.Welcome)
	r.POST(PathWebhook, h.Notify)
}

func addCheckoutRoutes(rg *gin.RouterGroup, sessionHandler *handlers.PaymentSessionHandler, orderHandler *handlers.OrderHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.POST("/:cart_id/payment-session", sessionHandler.CreatePaymentSession)
		carts.PUT("/:cart_id/payment-session", sessionHandler.UpdatePaymentSession)
		carts.GET("/:cart_id/payment-session/status", sessionHandler.GetPaymentSessionStatus)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:cart_id", orderHandler.GetOrder)
		orders.POST("/:cart_id/capture", orderHandler.CapturePayment)
		orders.POST("/:cart_id/refund", orderHandler.RefundPayment)
		orders.POST("/:cart_id/cancel", orderHandler.CancelPayment)
	}
}
