package dtos

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
