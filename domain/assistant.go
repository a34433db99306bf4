package domain

var (
	MessageSuccessChat = "chat response generated"

	// ChatFallback is returned to the user whenever the assistant call fails;
	// chat failures never surface as hard errors.
	ChatFallback = "Oops, I dropped the pan! Something went wrong. Try again."
)

type (
	ChatMessage struct {
		Role string `json:"role" validate:"required,oneof=user model"`
		Text string `json:"text" validate:"required"`
	}

	ChatRequest struct {
		Message string        `json:"message" validate:"required"`
		History []ChatMessage `json:"history" validate:"omitempty,dive"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
