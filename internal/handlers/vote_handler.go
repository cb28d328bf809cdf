package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
)

// VoteHandler handles up/down votes on posts and comments. Ballots live in
// the session; repeating a vote withdraws it.
type VoteHandler struct{}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// RegisterVoteRoutes registers vote-related routes
func (h *VoteHandler) RegisterVoteRoutes(g *echo.Group) {
	g.POST("/posts/:id/votes", h.VotePost)
	g.POST("/comments/:id/votes", h.VoteComment)
}

// VotePost casts, flips or withdraws the session's ballot on a post
func (h *VoteHandler) VotePost(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	var req models.VoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// Verify post exists
	if _, ok := sess.Forum().PostByID(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	vote, err := sess.VotePost(postID, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, models.VoteState{ID: postID, Vote: vote, Score: sess.PostScore(postID)})
}

// VoteComment casts, flips or withdraws the session's ballot on a comment
func (h *VoteHandler) VoteComment(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	commentID := c.Param("id")

	var req models.VoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, ok := sess.Forum().CommentByID(commentID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	vote, err := sess.VoteComment(commentID, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, models.VoteState{ID: commentID, Vote: vote, Score: sess.CommentScore(commentID)})
}
