package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"blog/database"
	"blog/database/model"
	"blog/logger"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("BLOG_SECRET", "test-secret")
	t.Setenv("BLOG_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
	})

	engine, err := NewServer().initRouter()
	if err != nil {
		t.Fatalf("init router: %v", err)
	}
	return engine
}

// do sends a request, carrying over any session cookies, and returns the
// recorder plus the cookies to use for the next request.
func do(t *testing.T, engine *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	next := cookies
	if set := w.Result().Cookies(); len(set) > 0 {
		next = set
	}
	return w, next
}

func register(t *testing.T, engine *gin.Engine, email, password, name string) []*http.Cookie {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}, "name": {name}}
	w, cookies := do(t, engine, http.MethodPost, "/register", form, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("register %s: code %d", email, w.Code)
	}
	return cookies
}

func TestRegisterAndDuplicate(t *testing.T) {
	engine := newTestEngine(t)

	form := url.Values{"email": {"a@x.com"}, "password": {"secret"}, "name": {"Alice"}}
	w, cookies := do(t, engine, http.MethodPost, "/register", form, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotEmpty(t, cookies)

	// Second registration with the same email is refused and sent to login
	w, _ = do(t, engine, http.MethodPost, "/register", form, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var count int64
	database.GetDB().Model(&model.User{}).Where("email = ?", "a@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	engine := newTestEngine(t)
	register(t, engine, "a@x.com", "secret", "Alice")

	form := url.Values{"email": {"a@x.com"}, "password": {"wrong"}}
	w, _ := do(t, engine, http.MethodPost, "/login", form, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	form = url.Values{"email": {"nobody@x.com"}, "password": {"secret"}}
	w, _ = do(t, engine, http.MethodPost, "/login", form, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	form = url.Values{"email": {"a@x.com"}, "password": {"secret"}}
	w, cookies := do(t, engine, http.MethodPost, "/login", form, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotEmpty(t, cookies)
}

func TestAdminOnlyAuthoring(t *testing.T) {
	engine := newTestEngine(t)
	admin := register(t, engine, "admin@x.com", "secret", "Admin")
	other := register(t, engine, "b@x.com", "secret", "Bob")

	postForm := url.Values{
		"title":    {"Hello"},
		"subtitle": {"A greeting"},
		"body":     {"Welcome to the blog."},
		"img_url":  {"https://img.example.com/1.jpg"},
	}

	// Anonymous and non-admin callers are rejected without any mutation
	w, _ := do(t, engine, http.MethodPost, "/new-post", postForm, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = do(t, engine, http.MethodPost, "/new-post", postForm, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	database.GetDB().Model(&model.BlogPost{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// The admin (first registered account) can author
	w, _ = do(t, engine, http.MethodPost, "/new-post", postForm, admin)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w, _ = do(t, engine, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello")

	// Non-admin delete is forbidden and the post survives
	w, _ = do(t, engine, http.MethodGet, "/delete/1", nil, other)
	assert.Equal(t, http.StatusForbidden, w.Code)
	database.GetDB().Model(&model.BlogPost{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// Non-admin edit is forbidden too
	w, _ = do(t, engine, http.MethodGet, "/edit-post/1", nil, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin edit and delete work
	postForm.Set("title", "Hello Again")
	w, _ = do(t, engine, http.MethodPost, "/edit-post/1", postForm, admin)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/post/1", w.Header().Get("Location"))

	w, _ = do(t, engine, http.MethodGet, "/delete/1", nil, admin)
	assert.Equal(t, http.StatusFound, w.Code)
	database.GetDB().Model(&model.BlogPost{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCommenting(t *testing.T) {
	engine := newTestEngine(t)
	admin := register(t, engine, "admin@x.com", "secret", "Admin")
	other := register(t, engine, "b@x.com", "secret", "Bob")

	postForm := url.Values{
		"title":    {"Hello"},
		"subtitle": {"A greeting"},
		"body":     {"Welcome to the blog."},
		"img_url":  {"https://img.example.com/1.jpg"},
	}
	w, _ := do(t, engine, http.MethodPost, "/new-post", postForm, admin)
	assert.Equal(t, http.StatusFound, w.Code)

	// Anonymous comments are discarded with a login redirect
	commentForm := url.Values{"comment": {"drive-by"}}
	w, _ = do(t, engine, http.MethodPost, "/post/1", commentForm, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var count int64
	database.GetDB().Model(&model.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// An authenticated user's comment is stored and rendered immediately
	commentForm = url.Values{"comment": {"great first post"}}
	w, _ = do(t, engine, http.MethodPost, "/post/1", commentForm, other)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/post/1", w.Header().Get("Location"))

	w, _ = do(t, engine, http.MethodGet, "/post/1", nil, other)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "great first post")
	assert.Contains(t, w.Body.String(), "Bob")
}

func TestShowPostNotFound(t *testing.T) {
	engine := newTestEngine(t)

	w, _ := do(t, engine, http.MethodGet, "/post/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, engine, http.MethodGet, "/post/not-a-number", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogout(t *testing.T) {
	engine := newTestEngine(t)
	admin := register(t, engine, "admin@x.com", "secret", "Admin")

	w, cleared := do(t, engine, http.MethodGet, "/logout", nil, admin)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The cleared session no longer reaches admin routes
	w, _ = do(t, engine, http.MethodGet, "/new-post", nil, cleared)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaticPages(t *testing.T) {
	engine := newTestEngine(t)

	for _, path := range []string{"/", "/about", "/contact", "/login", "/register"} {
		w, _ := do(t, engine, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
