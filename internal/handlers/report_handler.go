package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
)

// ReportHandler handles content reports
type ReportHandler struct{}

// NewReportHandler creates a new ReportHandler
func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// RegisterReportRoutes registers report routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/posts/:id/reports", h.CreateReport)
	g.GET("/posts/:id/reports", h.GetReports)
}

// CreateReport files a report against a post
func (h *ReportHandler) CreateReport(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	var req models.CreateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// Verify post exists
	if _, ok := sess.Forum().PostByID(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	report, err := sess.CreateReport(models.CreateReportInput{
		PostID:  postID,
		Reason:  models.ReportReason(req.Reason),
		Details: req.Details,
	})
	if err != nil {
		if errors.Is(err, services.ErrIDExhausted) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, report)
}

// GetReports lists a post's reports, oldest first
func (h *ReportHandler) GetReports(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	if _, ok := sess.Forum().PostByID(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if notModified(c, "reports", sess.Versions().Reports) {
		return c.NoContent(http.StatusNotModified)
	}

	reports := sess.Forum().ReportsByPostID(postID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"reports": reports,
			"count":   len(reports),
		},
	})
}
