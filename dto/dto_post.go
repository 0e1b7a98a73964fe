package dto

type CreatePostResponse struct {
	Message string `json:"message" example:"post created successfully"`
	PostID  string `json:"postId"  example:"64a7b8c9d1e2f30456789abc"`
}

type ReactionRequest struct {
	Type string `json:"type" example:"like"`
}

type ReactionResponse struct {
	Message string `json:"message" example:"reaction updated successfully"`
	// State is the caller's membership after the toggle: liked, disliked
	// or none.
	State string `json:"state" example:"liked"`
}
