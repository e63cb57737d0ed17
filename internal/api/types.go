package api

// MessageResponse is the body of a successful sign-up or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}
