package dto

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000" example:"Nice blog!"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
