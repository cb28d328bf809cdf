package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
)

// CatalogHandler serves the fixed reference data: categories, faculties
// and courses
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterCatalogRoutes registers reference data routes
func (h *CatalogHandler) RegisterCatalogRoutes(g *echo.Group) {
	g.GET("/categories", h.GetCategories)
	g.GET("/categories/:id", h.GetCategory)
	g.GET("/faculties", h.GetFaculties)
	g.GET("/faculties/:id", h.GetFaculty)
	g.GET("/faculties/:id/courses", h.GetFacultyCourses)
	g.GET("/courses", h.GetCourses)
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.Forum().Categories())
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	category, ok := sess.Forum().CategoryByID(models.CategoryID(c.Param("id")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) GetFaculties(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.Forum().Faculties())
}

func (h *CatalogHandler) GetFaculty(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	faculty, ok := sess.Forum().FacultyByID(models.FacultyID(c.Param("id")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Faculty not found")
	}
	return c.JSON(http.StatusOK, faculty)
}

// GetFacultyCourses lists the courses of one faculty
func (h *CatalogHandler) GetFacultyCourses(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	facultyID := models.FacultyID(c.Param("id"))
	if _, ok := sess.Forum().FacultyByID(facultyID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Faculty not found")
	}
	return c.JSON(http.StatusOK, sess.Forum().CoursesByFaculty(facultyID))
}

func (h *CatalogHandler) GetCourses(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.Forum().Courses())
}
