package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/session"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct{}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler() *FeedHandler {
	return &FeedHandler{}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetFeed)
	g.GET("/categories/:id/posts", h.GetCategoryFeed)
	g.GET("/faculties/:id/posts", h.GetFacultyFeed)
}

// EnrichedPost is a post with the viewer's ballot and saved flag plus
// comment and report counts
type EnrichedPost struct {
	models.Post
	Vote         int  `json:"vote"`
	Score        int  `json:"score"`
	IsSaved      bool `json:"is_saved"`
	CommentCount int  `json:"comment_count"`
	ReportCount  int  `json:"report_count"`
}

func enrichPost(sess *session.Session, p models.Post) EnrichedPost {
	return EnrichedPost{
		Post:         p,
		Vote:         sess.PostVote(p.ID),
		Score:        sess.PostScore(p.ID),
		IsSaved:      sess.IsPostSaved(p.ID),
		CommentCount: len(sess.Forum().CommentsByPostID(p.ID)),
		ReportCount:  sess.Forum().PostReportCount(p.ID),
	}
}

func enrichPosts(sess *session.Session, posts []models.Post) []EnrichedPost {
	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		enriched[i] = enrichPost(sess, p)
	}
	return enriched
}

// GetFeed returns enriched posts, newest first. It accepts category_id,
// faculty_id and course_id filters.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	posts := sess.Forum().Posts()
	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		posts = filterPosts(posts, func(p models.Post) bool { return string(p.CategoryID) == categoryID })
	}
	if facultyID := c.QueryParam("faculty_id"); facultyID != "" {
		posts = filterPosts(posts, func(p models.Post) bool { return string(p.FacultyID) == facultyID })
	}
	if courseID := c.QueryParam("course_id"); courseID != "" {
		posts = filterPosts(posts, func(p models.Post) bool { return p.CourseID != nil && *p.CourseID == courseID })
	}

	return h.respond(c, sess, posts)
}

// GetCategoryFeed returns the posts of one category
func (h *FeedHandler) GetCategoryFeed(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	categoryID := models.CategoryID(c.Param("id"))
	if _, ok := sess.Forum().CategoryByID(categoryID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	return h.respond(c, sess, sess.Forum().PostsByCategory(categoryID))
}

// GetFacultyFeed returns the posts of one faculty
func (h *FeedHandler) GetFacultyFeed(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	facultyID := models.FacultyID(c.Param("id"))
	if _, ok := sess.Forum().FacultyByID(facultyID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Faculty not found")
	}
	return h.respond(c, sess, sess.Forum().PostsByFaculty(facultyID))
}

func (h *FeedHandler) respond(c echo.Context, sess *session.Session, posts []models.Post) error {
	page, limit := pageParams(c, 10)
	pagePosts := paginate(posts, page, limit)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": enrichPosts(sess, pagePosts),
		},
		"meta": pageMeta(page, limit, len(posts)),
	})
}

func filterPosts(posts []models.Post, keep func(models.Post) bool) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
