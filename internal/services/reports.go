package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// CreateReport files a report against a post. Blank details are dropped.
func (s *ForumService) CreateReport(input models.CreateReportInput) (models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID(ReportIDPrefix, func(id string) bool {
		_, taken := s.reportRepository.GetReportByID(id)
		return taken
	})
	if err != nil {
		return models.Report{}, fmt.Errorf("create report: %w", err)
	}

	var details *string
	if input.Details != nil {
		if trimmed := strings.TrimSpace(*input.Details); trimmed != "" {
			details = &trimmed
		}
	}

	report := models.Report{
		ID:        id,
		PostID:    input.PostID,
		Reason:    input.Reason,
		Details:   details,
		CreatedAt: s.now(),
	}
	if err := s.reportRepository.CreateReport(report); err != nil {
		return models.Report{}, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// ReportsByPostID returns a post's reports, oldest first
func (s *ForumService) ReportsByPostID(postID string) []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reportRepository.GetReportsByPostID(postID)
}

// PostReportCount returns how many reports a post has
func (s *ForumService) PostReportCount(postID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reportRepository.CountByPostID(postID)
}

// ReportedPosts lists the posts with at least one report, most reported
// first. Equal counts keep feed order.
func (s *ForumService) ReportedPosts() []models.ReportedPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := s.reportRepository.CountsByPost()
	out := make([]models.ReportedPost, 0)
	for _, p := range s.postRepository.GetAllPosts() {
		if n := counts[p.ID]; n > 0 {
			out = append(out, models.ReportedPost{Post: p, ReportCount: n})
		}
	}
	slices.SortStableFunc(out, func(a, b models.ReportedPost) int {
		return b.ReportCount - a.ReportCount
	})
	return out
}
