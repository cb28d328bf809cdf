package models

// ChatRequest defines the request body for the study assistant
type ChatRequest struct {
	Message string `json:"message" validate:"required,trimmed_min=1,max=2000"`
}
