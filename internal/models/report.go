package models

import "time"

// ReportReason is why a post was reported
type ReportReason string

const (
	ReasonSpam                 ReportReason = "spam"
	ReasonInappropriateContent ReportReason = "contenido-inapropiado"
	ReasonOffTopic             ReportReason = "fuera-de-tema"
	ReasonOther                ReportReason = "otro"
)

// Report is an append-only moderation record against a post
type Report struct {
	ID        string       `json:"id"`
	PostID    string       `json:"post_id"`
	Reason    ReportReason `json:"reason"`
	Details   *string      `json:"details,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// CreateReportInput holds the fields of a new report
type CreateReportInput struct {
	PostID  string
	Reason  ReportReason
	Details *string
}

// CreateReportRequest defines the request body for reporting a post
type CreateReportRequest struct {
	Reason  string  `json:"reason" validate:"required,oneof=spam contenido-inapropiado fuera-de-tema otro"`
	Details *string `json:"details,omitempty" validate:"omitempty,max=1000"`
}

// ReportedPost pairs a post with the number of reports filed against it
type ReportedPost struct {
	Post        Post `json:"post"`
	ReportCount int  `json:"report_count"`
}
