package services

import (
	"slices"
	"sync"
	"time"

	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/repositories"
	"github.com/sanmarcos/conecta/backend/internal/seed"
	"github.com/sanmarcos/conecta/backend/pkg/imageurl"
)

// ForumService is the single authority over one forum instance: posts,
// comments, reports, notifications and the user roster. Every exported
// method runs to completion under one lock, so callers always observe
// their own prior writes.
type ForumService struct {
	mu sync.Mutex

	postRepository         repositories.PostRepository
	commentRepository      repositories.CommentRepository
	reportRepository       repositories.ReportRepository
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository

	categories []models.Category
	faculties  []models.Faculty
	courses    []models.Course

	images imageurl.Normalizer
	now    func() time.Time
	ids    IDGenerator

	defaultUserID string
	currentUserID string
}

// Option configures a ForumService
type Option func(*ForumService)

// WithClock overrides the time source used for createdAt stamps
func WithClock(now func() time.Time) Option {
	return func(s *ForumService) { s.now = now }
}

// WithIDGenerator overrides how entity IDs are minted
func WithIDGenerator(g IDGenerator) Option {
	return func(s *ForumService) { s.ids = g }
}

// WithImageNormalizer sets the deployment base used for user images
func WithImageNormalizer(n imageurl.Normalizer) Option {
	return func(s *ForumService) { s.images = n }
}

// NewForumService creates a ForumService over repos. The current user
// starts as the default roster user.
func NewForumService(repos *repositories.Repositories, opts ...Option) *ForumService {
	s := &ForumService{
		postRepository:         repos.Posts,
		commentRepository:      repos.Comments,
		reportRepository:       repos.Reports,
		notificationRepository: repos.Notifications,
		userRepository:         repos.Users,
		categories:             seed.Categories(),
		faculties:              seed.Faculties(),
		courses:                seed.Courses(),
		images:                 imageurl.New("/"),
		now:                    time.Now,
		defaultUserID:          seed.DefaultUserID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewRandomIDGenerator(s.now)
	}
	s.currentUserID = s.defaultUserID
	return s
}

// NewSeededForumService creates a ForumService over freshly seeded
// in-memory repositories, stamped with the configured clock
func NewSeededForumService(opts ...Option) *ForumService {
	clocked := &ForumService{now: time.Now}
	for _, opt := range opts {
		opt(clocked)
	}
	return NewForumService(repositories.NewSeededRepositories(clocked.now()), opts...)
}

// Categories returns the fixed post categories
func (s *ForumService) Categories() []models.Category {
	return slices.Clone(s.categories)
}

// CategoryByID looks up a category
func (s *ForumService) CategoryByID(id models.CategoryID) (models.Category, bool) {
	idx := slices.IndexFunc(s.categories, func(c models.Category) bool { return c.ID == id })
	if idx == -1 {
		return models.Category{}, false
	}
	return s.categories[idx], true
}

// Faculties returns the fixed faculties
func (s *ForumService) Faculties() []models.Faculty {
	return slices.Clone(s.faculties)
}

// FacultyByID looks up a faculty
func (s *ForumService) FacultyByID(id models.FacultyID) (models.Faculty, bool) {
	idx := slices.IndexFunc(s.faculties, func(f models.Faculty) bool { return f.ID == id })
	if idx == -1 {
		return models.Faculty{}, false
	}
	return s.faculties[idx], true
}

// Courses returns every course
func (s *ForumService) Courses() []models.Course {
	return slices.Clone(s.courses)
}

// CoursesByFaculty returns the courses offered by one faculty
func (s *ForumService) CoursesByFaculty(facultyID models.FacultyID) []models.Course {
	out := make([]models.Course, 0)
	for _, c := range s.courses {
		if c.FacultyID == facultyID {
			out = append(out, c)
		}
	}
	return out
}
