package repositories

import (
	"fmt"
	"slices"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	CreateReport(report models.Report) error
	GetReportByID(id string) (models.Report, bool)
	GetReportsByPostID(postID string) []models.Report
	CountByPostID(postID string) int
	CountsByPost() map[string]int
	DeleteReportsByPostID(postID string) int
}

// MemoryReportRepository implements ReportRepository as an append-only log
type MemoryReportRepository struct {
	reports []models.Report
}

func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{}
}

func (r *MemoryReportRepository) CreateReport(report models.Report) error {
	if _, ok := r.GetReportByID(report.ID); ok {
		return fmt.Errorf("report %s: %w", report.ID, ErrDuplicateID)
	}
	r.reports = append(r.reports, report)
	return nil
}

func (r *MemoryReportRepository) GetReportByID(id string) (models.Report, bool) {
	idx := slices.IndexFunc(r.reports, func(rep models.Report) bool { return rep.ID == id })
	if idx == -1 {
		return models.Report{}, false
	}
	return r.reports[idx], true
}

// GetReportsByPostID retrieves the reports of a post, oldest first
func (r *MemoryReportRepository) GetReportsByPostID(postID string) []models.Report {
	out := make([]models.Report, 0)
	for _, rep := range r.reports {
		if rep.PostID == postID {
			out = append(out, rep)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Report) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func (r *MemoryReportRepository) CountByPostID(postID string) int {
	n := 0
	for _, rep := range r.reports {
		if rep.PostID == postID {
			n++
		}
	}
	return n
}

// CountsByPost returns the number of reports per post ID
func (r *MemoryReportRepository) CountsByPost() map[string]int {
	counts := make(map[string]int)
	for _, rep := range r.reports {
		counts[rep.PostID]++
	}
	return counts
}

func (r *MemoryReportRepository) DeleteReportsByPostID(postID string) int {
	before := len(r.reports)
	r.reports = slices.DeleteFunc(r.reports, func(rep models.Report) bool { return rep.PostID == postID })
	return before - len(r.reports)
}
