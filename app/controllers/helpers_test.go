package controllers

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wacblog/app/catalog"
	"wacblog/app/models"
	"wacblog/app/repositories/memory"
	"wacblog/app/services"
	"wacblog/app/sessions"
	"wacblog/app/views"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	store    *services.Store
	sessions *sessions.Manager
	router   *mux.Router
}

func setupTestApp(t *testing.T) *testApp {
	store := services.NewStore(memory.NewPostRepository(), memory.NewCommentRepository(),
		services.WithClock(func() time.Time { return time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, store.Seed(catalog.MustLoad()))

	manager := sessions.NewManager("", nil)
	posts := NewPostController(store, nil)
	comments := NewCommentController(store, nil)
	cat := NewCatalogController(store, nil)
	sess := NewSessionController(nil)
	pages := NewPageController(store, views.MustLoad(), nil)

	// Register routes manually so the controllers are tested without the
	// production middleware stack.
	router := mux.NewRouter()
	router.Use(manager.Middleware)
	router.NotFoundHandler = manager.Middleware(http.HandlerFunc(pages.NotFound))

	router.HandleFunc("/", pages.Home).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", pages.Post).Methods("GET")
	router.HandleFunc("/about", pages.About).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", posts.Index).Methods("GET")
	api.HandleFunc("/posts/featured", posts.Featured).Methods("GET")
	api.HandleFunc("/posts/popular", posts.Popular).Methods("GET")
	api.HandleFunc("/posts/trending", posts.Trending).Methods("GET")
	api.HandleFunc("/posts/recommendations", posts.Recommendations).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", posts.Show).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/like", posts.Like).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/view", posts.View).Methods("POST")
	api.HandleFunc("/posts/{postId:[0-9]+}/comments", comments.Index).Methods("GET")
	api.HandleFunc("/posts/{postId:[0-9]+}/comments", comments.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/like", comments.Like).Methods("POST")
	api.HandleFunc("/categories", cat.Categories).Methods("GET")
	api.HandleFunc("/categories/{id}/posts", cat.CategoryPosts).Methods("GET")
	api.HandleFunc("/keywords", cat.Keywords).Methods("GET")
	api.HandleFunc("/session", sess.Show).Methods("GET")

	return &testApp{store: store, sessions: manager, router: router}
}

// client replays the session cookie across requests like a browser would.
type client struct {
	app    *testApp
	cookie *http.Cookie
}

func (a *testApp) client() *client {
	return &client{app: a}
}

func (c *client) do(method, path string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.app.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == c.app.sessions.CookieName() {
			c.cookie = ck
		}
	}
	return w
}

func decodePosts(t *testing.T, w *httptest.ResponseRecorder) []int {
	t.Helper()
	var posts []models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func newRequestWithVars(method, path string, vars map[string]string) *http.Request {
	return mux.SetURLVars(httptest.NewRequest(method, path, nil), vars)
}

func recordHandler(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func (a *testApp) pages(t *testing.T) map[string]*template.Template {
	templates, err := views.Load()
	require.NoError(t, err)
	return templates
}
