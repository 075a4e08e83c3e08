package response

const WelcomeMessage = "Welcome to Mercado Pago payment provider!"

type MessageResponse struct {
	Message string `json:"message"`
}
