package dto

// ErrorResponse is the uniform failure envelope. Status codes mirror the
// error kind; Message never carries raw storage errors.
type ErrorResponse struct {
	Ok      bool     `json:"ok"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// OkResponse is the envelope for operations with no payload beyond a message.
type OkResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
