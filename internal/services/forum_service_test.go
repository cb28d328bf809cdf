package services

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/repositories"
	"github.com/sanmarcos/conecta/backend/pkg/imageurl"
)

const (
	alonsoEmail = "alonso.moreno@unmsm.edu.pe" // user-1, default user
	mariaEmail  = "maria.lopez@unmsm.edu.pe"   // user-2, author of p1
	carlosEmail = "carlos.perez@unmsm.edu.pe"  // user-3
	anaEmail    = "ana.castillo@unmsm.edu.pe"  // user-4
)

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

type sequenceIDs struct {
	n int
}

func (g *sequenceIDs) NewID(prefix string) string {
	g.n++
	return fmt.Sprintf("%s-test-%d", prefix, g.n)
}

type constantIDs string

func (g constantIDs) NewID(prefix string) string { return prefix + "-" + string(g) }

func newTestService(t *testing.T, opts ...Option) *ForumService {
	t.Helper()
	clock := &stepClock{t: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), step: time.Second}
	base := []Option{WithClock(clock.Now), WithIDGenerator(&sequenceIDs{})}
	return NewSeededForumService(append(base, opts...)...)
}

func login(t *testing.T, s *ForumService, email string) models.User {
	t.Helper()
	u, err := s.Login(models.LoginCredentials{Email: email})
	if err != nil {
		t.Fatalf("Login(%s): %v", email, err)
	}
	return u
}

func mustCreatePost(t *testing.T, s *ForumService, title string) models.Post {
	t.Helper()
	p, err := s.CreatePost(models.CreatePostInput{
		Title:      title,
		Content:    "Contenido suficientemente largo para publicar.",
		CategoryID: models.CategoryDiscusiones,
		FacultyID:  models.FacultyCiencias,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	return p
}

func mustComment(t *testing.T, s *ForumService, postID string, parentID *string) models.Comment {
	t.Helper()
	c, err := s.CreateComment(models.CreateCommentInput{PostID: postID, Content: "respuesta", ParentCommentID: parentID})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	return c
}

func strPtr(s string) *string { return &s }

func TestPostLifecycle(t *testing.T) {
	s := newTestService(t)
	a := login(t, s, mariaEmail)

	post, err := s.CreatePost(models.CreatePostInput{
		Title:      "Test question",
		Content:    "Why does X happen?",
		CategoryID: models.CategoryDiscusiones,
		FacultyID:  models.FacultyCiencias,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == "" {
		t.Fatal("expected a non-empty id")
	}
	if post.Author != a.Name || post.AuthorID != a.ID {
		t.Fatalf("expected author %s (%s), got %s (%s)", a.Name, a.ID, post.Author, post.AuthorID)
	}
	if post.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be stamped")
	}
	if _, err := time.Parse(time.RFC3339Nano, post.CreatedAt.Format(time.RFC3339Nano)); err != nil {
		t.Fatalf("createdAt does not round-trip as a timestamp: %v", err)
	}
	if first := s.Posts()[0]; first.ID != post.ID {
		t.Fatalf("expected the new post first, got %s", first.ID)
	}

	title := "Edited title"
	updated, ok := s.UpdatePost(models.PostPatch{ID: post.ID, Title: &title})
	if !ok {
		t.Fatal("UpdatePost reported a missing post")
	}
	if updated.Title != title {
		t.Fatalf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Content != post.Content || updated.CategoryID != post.CategoryID ||
		updated.FacultyID != post.FacultyID || updated.Author != post.Author || !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Fatalf("fields other than title changed: %+v vs %+v", updated, post)
	}

	s.DeletePost(post.ID)
	if _, ok := s.PostByID(post.ID); ok {
		t.Fatal("post still present after delete")
	}
}

func TestUpdatePostMissing(t *testing.T) {
	s := newTestService(t)
	title := "whatever"
	if _, ok := s.UpdatePost(models.PostPatch{ID: "nope", Title: &title}); ok {
		t.Fatal("expected not found")
	}
}

func TestUpdatePostPartialFields(t *testing.T) {
	s := newTestService(t)

	p, _ := s.PostByID("p1")
	if p.CourseID == nil {
		t.Fatal("seed post p1 should have a course")
	}

	empty := ""
	faculty := models.FacultyDerecho
	updated, _ := s.UpdatePost(models.PostPatch{ID: "p1", Content: &empty, FacultyID: &faculty})
	if updated.Content != "" || updated.FacultyID != models.FacultyDerecho {
		t.Fatalf("explicit values must overwrite: %+v", updated)
	}
	if updated.CourseID == nil || *updated.CourseID != "mat101" {
		t.Fatal("absent course must keep its value")
	}

	updated, _ = s.UpdatePost(models.PostPatch{ID: "p1", CourseID: models.Null[string]()})
	if updated.CourseID != nil {
		t.Fatalf("explicit null must clear the course, got %v", *updated.CourseID)
	}

	updated, _ = s.UpdatePost(models.PostPatch{ID: "p1", CourseID: models.Some("der101")})
	if updated.CourseID == nil || *updated.CourseID != "der101" {
		t.Fatal("course must be set")
	}
	if stored, _ := s.PostByID("p1"); stored.Title != p.Title {
		t.Fatal("title must be untouched")
	}
}

func TestPostQueriesReturnCopies(t *testing.T) {
	s := newTestService(t)
	posts := s.Posts()
	posts[0].Title = "mutated"
	if s.Posts()[0].Title == "mutated" {
		t.Fatal("callers must not be able to mutate stored posts")
	}
	if got := s.PostsByCategory(models.CategoryApuntes); len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("unexpected category query result %+v", got)
	}
	if got := s.PostsByFaculty(models.FacultyIngenieriaSistemas); len(got) != 2 {
		t.Fatalf("expected 2 FISI posts, got %d", len(got))
	}
}

func TestDeletePostCascades(t *testing.T) {
	s := newTestService(t)
	login(t, s, carlosEmail)
	post := mustCreatePost(t, s, "Post con hilo")

	root := mustComment(t, s, post.ID, nil)
	child := mustComment(t, s, post.ID, &root.ID)
	mustComment(t, s, post.ID, &child.ID)
	mustComment(t, s, post.ID, nil)
	for _, reason := range []models.ReportReason{models.ReasonSpam, models.ReasonOther} {
		if _, err := s.CreateReport(models.CreateReportInput{PostID: post.ID, Reason: reason}); err != nil {
			t.Fatalf("CreateReport: %v", err)
		}
	}
	otherComments := len(s.CommentsByPostID("p1"))

	s.DeletePost(post.ID)

	if got := s.CommentsByPostID(post.ID); len(got) != 0 {
		t.Fatalf("expected no comments, got %d", len(got))
	}
	if n := s.PostReportCount(post.ID); n != 0 {
		t.Fatalf("expected no reports, got %d", n)
	}
	if _, ok := s.PostByID(post.ID); ok {
		t.Fatal("post still present")
	}
	if len(s.CommentsByPostID("p1")) != otherComments {
		t.Fatal("comments of other posts must survive")
	}

	s.DeletePost(post.ID)
	s.DeletePost("never-existed")
}

func TestDeleteCommentCascades(t *testing.T) {
	s := newTestService(t)
	a := mustComment(t, s, "p3", nil)
	b := mustComment(t, s, "p3", &a.ID)
	c := mustComment(t, s, "p3", &b.ID)
	sibling := mustComment(t, s, "p3", nil)
	leafParent := mustComment(t, s, "p3", &sibling.ID)

	if removed := s.DeleteComment(leafParent.ID); removed != 1 {
		t.Fatalf("deleting a leaf should remove 1 comment, removed %d", removed)
	}
	if _, ok := s.CommentByID(sibling.ID); !ok {
		t.Fatal("deleting a leaf must keep its parent")
	}

	if removed := s.DeleteComment(a.ID); removed != 3 {
		t.Fatalf("expected A, B and C removed, removed %d", removed)
	}
	for _, id := range []string{a.ID, b.ID, c.ID} {
		if _, ok := s.CommentByID(id); ok {
			t.Errorf("comment %s survived the cascade", id)
		}
	}
	if _, ok := s.CommentByID(sibling.ID); !ok {
		t.Fatal("unrelated comment was removed")
	}

	if removed := s.DeleteComment(a.ID); removed != 0 {
		t.Fatalf("second delete should be a no-op, removed %d", removed)
	}
}

func TestDescendantsOfToleratesCycles(t *testing.T) {
	children := map[string][]string{
		"a": {"b"},
		"b": {"c", "a"},
		"c": {"b"},
	}
	got := descendantsOf("a", children)
	if len(got) != 3 {
		t.Fatalf("expected 3 ids, got %v", got)
	}
}

func TestCommentsSortedByCreatedAt(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	comments := repositories.NewMemoryCommentRepository([]models.Comment{
		{ID: "third", PostID: "p1", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "first", PostID: "p1", CreatedAt: base.Add(time.Minute)},
		{ID: "second", PostID: "p1", CreatedAt: base.Add(2 * time.Minute)},
	})
	repos := repositories.NewSeededRepositories(base)
	repos.Comments = comments
	s := NewForumService(repos)

	got := s.CommentsByPostID("p1")
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].ID)
		}
	}
}

func TestCreateCommentTrimsAndStamps(t *testing.T) {
	s := newTestService(t)
	u := login(t, s, anaEmail)

	c, err := s.CreateComment(models.CreateCommentInput{PostID: "p1", Content: "  Nice question  "})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.Content != "Nice question" || c.PostID != "p1" || c.Author != u.Name || c.AuthorID != u.ID {
		t.Fatalf("unexpected comment %+v", c)
	}

	empty := ""
	top, err := s.CreateComment(models.CreateCommentInput{PostID: "p1", Content: "x", ParentCommentID: &empty})
	if err != nil || top.ParentCommentID != nil {
		t.Fatalf("an empty parent id means a top-level comment, got %+v %v", top, err)
	}

	updated, ok := s.UpdateComment(c.ID, "  editado ")
	if !ok || updated.Content != "editado" {
		t.Fatalf("UpdateComment: %+v %v", updated, ok)
	}
	if _, ok := s.UpdateComment("missing", "x"); ok {
		t.Fatal("expected not found")
	}
}

func TestCreateCommentRejectsInvalidParent(t *testing.T) {
	s := newTestService(t)
	login(t, s, anaEmail)
	before := len(s.CommentsByPostID("p2"))
	notifsBefore := len(s.NotificationsForUser("user-1"))

	// c1 lives on p1
	_, err := s.CreateComment(models.CreateCommentInput{PostID: "p2", Content: "hola", ParentCommentID: strPtr("c1")})
	if !errors.Is(err, ErrInvalidParent) {
		t.Fatalf("expected ErrInvalidParent, got %v", err)
	}
	_, err = s.CreateComment(models.CreateCommentInput{PostID: "p2", Content: "hola", ParentCommentID: strPtr("ghost")})
	if !errors.Is(err, ErrInvalidParent) {
		t.Fatalf("expected ErrInvalidParent for a missing parent, got %v", err)
	}

	if len(s.CommentsByPostID("p2")) != before {
		t.Fatal("a rejected comment must not be stored")
	}
	if len(s.NotificationsForUser("user-1")) != notifsBefore {
		t.Fatal("a rejected comment must not notify")
	}
}

func TestCommentNotifiesPostAuthor(t *testing.T) {
	s := newTestService(t)
	a := login(t, s, mariaEmail)
	post := mustCreatePost(t, s, "Pregunta de María")

	b := login(t, s, carlosEmail)
	c, err := s.CreateComment(models.CreateCommentInput{PostID: post.ID, Content: "Nice question"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.PostID != post.ID || c.Author != b.Name {
		t.Fatalf("unexpected comment %+v", c)
	}

	notifs := s.NotificationsForUser(a.ID)
	if len(notifs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs))
	}
	n := notifs[0]
	if n.Read || n.Data.FromUser != b.Name || n.Type != models.NotificationReply {
		t.Fatalf("unexpected notification %+v", n)
	}
	if n.Data.PostID != post.ID || n.Data.CommentID == nil || *n.Data.CommentID != c.ID {
		t.Fatalf("notification payload does not point at the comment: %+v", n.Data)
	}
	if n.Data.Message != "Carlos Pérez comentó tu publicación." {
		t.Fatalf("unexpected message %q", n.Data.Message)
	}
	if s.UnreadNotificationCount(a.ID) != 1 {
		t.Fatal("expected one unread notification")
	}
}

func TestReplyFansOutToCommentAndPostAuthors(t *testing.T) {
	s := newTestService(t)
	// p1 is authored by María (Y); Carlos (X) comments first.
	x := login(t, s, carlosEmail)
	parent := mustComment(t, s, "p1", nil)

	countAll := func() int {
		total := 0
		for _, u := range s.Users() {
			total += len(s.NotificationsForUser(u.ID))
		}
		return total
	}
	before := countAll()
	xBefore := len(s.NotificationsForUser(x.ID))
	yBefore := len(s.NotificationsForUser("user-2"))

	login(t, s, anaEmail)
	reply := mustComment(t, s, "p1", &parent.ID)

	if got := countAll() - before; got != 2 {
		t.Fatalf("expected exactly 2 notifications, got %d", got)
	}
	xNotifs := s.NotificationsForUser(x.ID)
	if len(xNotifs) != xBefore+1 || xNotifs[0].Data.Message != "Ana Castillo respondió a tu comentario." {
		t.Fatalf("comment author not notified: %+v", xNotifs)
	}
	yNotifs := s.NotificationsForUser("user-2")
	if len(yNotifs) != yBefore+1 || *yNotifs[0].Data.CommentID != reply.ID {
		t.Fatalf("post author not notified: %+v", yNotifs)
	}
}

func TestNoSelfNotifications(t *testing.T) {
	s := newTestService(t)
	maria := login(t, s, mariaEmail)

	own := mustComment(t, s, "p1", nil)
	mustComment(t, s, "p1", &own.ID)

	if n := len(s.NotificationsForUser(maria.ID)); n != 0 {
		t.Fatalf("commenting on your own post or comment must not notify, got %d", n)
	}
}

func TestReplyToGuestCommentOnlyNotifiesPostAuthor(t *testing.T) {
	s := newTestService(t)
	login(t, s, anaEmail)

	// c1 was written by a guest outside the roster
	mustComment(t, s, "p1", strPtr("c1"))

	if n := len(s.NotificationsForUser("user-2")); n != 1 {
		t.Fatalf("expected the post author notified once, got %d", n)
	}
}

func TestNotificationReadFlags(t *testing.T) {
	s := newTestService(t)
	login(t, s, carlosEmail)
	mustComment(t, s, "p1", nil)
	mustComment(t, s, "p1", nil)

	notifs := s.NotificationsForUser("user-2")
	if len(notifs) != 2 || !notifs[0].CreatedAt.After(notifs[1].CreatedAt) {
		t.Fatalf("expected two notifications newest first, got %+v", notifs)
	}

	if !s.MarkNotificationAsRead(notifs[0].ID) || !s.MarkNotificationAsRead(notifs[0].ID) {
		t.Fatal("marking as read must be idempotent")
	}
	if s.MarkNotificationAsRead("missing") {
		t.Fatal("missing notification reported as marked")
	}
	if n := s.UnreadNotificationCount("user-2"); n != 1 {
		t.Fatalf("expected 1 unread, got %d", n)
	}
	s.MarkAllNotificationsAsRead("user-2")
	if n := s.UnreadNotificationCount("user-2"); n != 0 {
		t.Fatalf("expected 0 unread, got %d", n)
	}
}

func TestRandomIDsAreUnique(t *testing.T) {
	s := NewSeededForumService()
	pattern := regexp.MustCompile(`^[pcrn]-[0-9a-z]+-[0-9a-z]{6}$`)
	seen := make(map[string]bool)
	record := func(id string) {
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match the expected format", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}

	login(t, s, carlosEmail)
	for i := 0; i < 200; i++ {
		p := mustCreatePost(t, s, "Publicación numerada")
		record(p.ID)
		c := mustComment(t, s, "p1", nil)
		record(c.ID)
		r, err := s.CreateReport(models.CreateReportInput{PostID: p.ID, Reason: models.ReasonSpam})
		if err != nil {
			t.Fatalf("CreateReport: %v", err)
		}
		record(r.ID)
	}
	for _, n := range s.NotificationsForUser("user-2") {
		record(n.ID)
	}
}

func TestIDExhaustionLeavesStoreUntouched(t *testing.T) {
	s := newTestService(t, WithIDGenerator(constantIDs("fixed")))
	mustCreatePost(t, s, "Primera publicación")
	count := len(s.Posts())

	if _, err := s.CreatePost(models.CreatePostInput{Title: "Segunda"}); !errors.Is(err, ErrIDExhausted) {
		t.Fatalf("expected ErrIDExhausted, got %v", err)
	}
	if len(s.Posts()) != count {
		t.Fatal("a failed create must not store anything")
	}
}

func TestLoginAndLogout(t *testing.T) {
	s := newTestService(t)
	if s.CurrentUser().ID != "user-1" {
		t.Fatal("expected the default user before login")
	}

	u, err := s.Login(models.LoginCredentials{Email: "  ANA.Castillo@unmsm.edu.pe "})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != "user-4" || s.CurrentUser().ID != "user-4" {
		t.Fatalf("expected user-4, got %s", u.ID)
	}

	_, err = s.Login(models.LoginCredentials{Email: "nadie@unmsm.edu.pe"})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
	if authErr.Error() != "Usuario no encontrado. Usa un correo registrado." {
		t.Fatalf("unexpected message %q", authErr.Error())
	}
	if s.CurrentUser().ID != "user-4" {
		t.Fatal("a failed login must not change the current user")
	}

	s.Logout()
	if s.CurrentUser().ID != "user-1" {
		t.Fatal("logout must reset to the default user")
	}
}

func TestCurrentUserDefaults(t *testing.T) {
	s := newTestService(t, WithImageNormalizer(imageurl.New("/conecta/")))
	u := s.CurrentUser()

	if u.CreatedAt == nil || u.Bio == nil || *u.Bio != "" {
		t.Fatalf("expected createdAt and empty bio defaults, got %+v", u)
	}
	if *u.AvatarURL != "/conecta/images/default-avatar.png" {
		t.Errorf("unexpected avatar %q", *u.AvatarURL)
	}
	if *u.BannerURL != "/conecta/images/default-banner.jpg" {
		t.Errorf("unexpected banner %q", *u.BannerURL)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	s := newTestService(t, WithImageNormalizer(imageurl.New("/conecta/")))

	bio := "Estudiante de software"
	avatar := "me.png"
	banner := "https://cdn.example.com/banner.jpg"
	u, ok := s.UpdateUserProfile("user-3", models.UserPatch{Bio: &bio, AvatarURL: &avatar, BannerURL: &banner})
	if !ok {
		t.Fatal("expected user-3 to exist")
	}
	if *u.Bio != bio || *u.AvatarURL != "/conecta/images/me.png" || *u.BannerURL != banner {
		t.Fatalf("unexpected profile %+v", u)
	}
	if u.Name != "Carlos Pérez" {
		t.Fatal("untouched fields must keep their value")
	}

	stored, _ := s.UserByID("user-3")
	if *stored.AvatarURL != "/conecta/images/me.png" {
		t.Fatalf("normalizing twice must be stable, got %q", *stored.AvatarURL)
	}

	blank := ""
	u, _ = s.UpdateUserProfile("user-3", models.UserPatch{AvatarURL: &blank})
	if *u.AvatarURL != "/conecta/images/default-avatar.png" {
		t.Fatalf("blank avatar should fall back to the default, got %q", *u.AvatarURL)
	}

	blocked := true
	u, _ = s.UpdateUserProfile("user-3", models.UserPatch{IsBlocked: &blocked})
	if !u.IsBlocked {
		t.Fatal("expected user to be blocked")
	}

	if _, ok := s.UpdateUserProfile("user-99", models.UserPatch{Bio: &bio}); ok {
		t.Fatal("expected not found")
	}
}

func TestUpdateUserProfileDoesNotAliasCaller(t *testing.T) {
	s := newTestService(t)

	bio := "Me gusta la estadística"
	phone := "999 888 777"
	patch := models.UserPatch{Bio: &bio, Phone: &phone}
	u, ok := s.UpdateUserProfile("user-3", patch)
	if !ok {
		t.Fatal("expected user-3 to exist")
	}

	bio = "cambiado"
	phone = "000"
	if *u.Bio != "Me gusta la estadística" || *u.Phone != "999 888 777" {
		t.Fatalf("returned user follows the request, got %q %q", *u.Bio, *u.Phone)
	}

	*u.Bio = "editado fuera"
	stored, _ := s.UserByID("user-3")
	if *stored.Bio != "Me gusta la estadística" || *stored.Phone != "999 888 777" {
		t.Fatalf("stored user changed from outside, got %q %q", *stored.Bio, *stored.Phone)
	}
}

func TestReports(t *testing.T) {
	s := newTestService(t)

	blank := "   "
	r, err := s.CreateReport(models.CreateReportInput{PostID: "p3", Reason: models.ReasonSpam, Details: &blank})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if r.Details != nil {
		t.Fatalf("blank details should be dropped, got %q", *r.Details)
	}
	details := "  publicidad  "
	r2, _ := s.CreateReport(models.CreateReportInput{PostID: "p3", Reason: models.ReasonOffTopic, Details: &details})
	if r2.Details == nil || *r2.Details != "publicidad" {
		t.Fatal("details should be trimmed")
	}
	s.CreateReport(models.CreateReportInput{PostID: "p1", Reason: models.ReasonOther})

	got := s.ReportsByPostID("p3")
	if len(got) != 2 || got[0].ID != r.ID {
		t.Fatalf("expected oldest report first, got %+v", got)
	}
	if s.PostReportCount("p4") != 0 {
		t.Fatal("p4 has no reports")
	}

	ranked := s.ReportedPosts()
	if len(ranked) != 2 || ranked[0].Post.ID != "p3" || ranked[0].ReportCount != 2 || ranked[1].Post.ID != "p1" {
		t.Fatalf("unexpected ranking %+v", ranked)
	}
}

func TestReferenceData(t *testing.T) {
	s := newTestService(t)
	if len(s.Categories()) != 6 || len(s.Faculties()) != 6 {
		t.Fatal("expected six categories and six faculties")
	}
	if f, ok := s.FacultyByID(models.FacultyIngenieriaSistemas); !ok || f.ShortName != "FISI" {
		t.Fatalf("unexpected faculty %+v", f)
	}
	if _, ok := s.CategoryByID("inexistente"); ok {
		t.Fatal("unknown category must not be found")
	}
	if got := s.CoursesByFaculty(models.FacultyIngenieriaSistemas); len(got) != 3 {
		t.Fatalf("expected 3 FISI courses, got %d", len(got))
	}
	if got := s.CoursesByFaculty(models.FacultyFIEE); got == nil || len(got) != 0 {
		t.Fatal("expected an empty course list")
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		user models.User
		want bool
	}{
		{models.User{Name: "Admin Foro"}, true},
		{models.User{Name: "Ana", Email: "ADMIN@unmsm.edu.pe"}, true},
		{models.User{Name: "Ana", Email: "ana@unmsm.edu.pe"}, false},
	}
	for _, tt := range tests {
		if got := IsAdmin(tt.user); got != tt.want {
			t.Errorf("IsAdmin(%+v) = %v, want %v", tt.user, got, tt.want)
		}
	}
}
