package dto

import "github.com/Zibuza/Reschool-HW-B/model"

type UpdateProfileResponse struct {
	Message string      `json:"message" example:"profile updated successfully"`
	User    *model.User `json:"user"`
}

type UploadResponse struct {
	URL string `json:"url" example:"http://localhost:9000/uploads/3f2a-avatar.png"`
}
