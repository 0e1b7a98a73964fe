package dto

// ErrorResponse is the uniform failure body. Internal details stay in
// the logs; clients only ever see the message.
type ErrorResponse struct {
	Message string `json:"message" example:"not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"post created successfully"`
}
