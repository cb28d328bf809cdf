package models

// VoteRequest defines the request body for voting on a post or comment
type VoteRequest struct {
	Value int `json:"value" validate:"required,oneof=1 -1"`
}

// VoteState is the viewer's ballot and the score shown for an entity
type VoteState struct {
	ID    string `json:"id"`
	Vote  int    `json:"vote"`
	Score int    `json:"score"`
}
