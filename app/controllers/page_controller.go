package controllers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"wacblog/app/models"
	"wacblog/app/services"
	"wacblog/app/sessions"

	"go.uber.org/zap"
)

// PageController renders the HTML pages of the site.
type PageController struct {
	base
	templates map[string]*template.Template
}

// NewPageController creates a PageController rendering with templates.
func NewPageController(store *services.Store, templates map[string]*template.Template, logger *zap.Logger) *PageController {
	return &PageController{base: newBase(store, logger), templates: templates}
}

type homePage struct {
	Query     string
	Searching bool
	Category  string
	Results   []*models.Post

	Featured        []*models.Post
	Popular         []*models.Post
	Trending        []*models.Post
	Recommendations []*models.Post

	Categories  []models.Category
	HotKeywords []string
}

// Home renders the landing page, or search and category results when the
// q or category parameter is set.
func (pc *PageController) Home(w http.ResponseWriter, r *http.Request) {
	data := homePage{
		Query:       strings.TrimSpace(r.URL.Query().Get("q")),
		Category:    r.URL.Query().Get("category"),
		Categories:  pc.store.Categories(),
		HotKeywords: pc.store.HotKeywords(),
	}

	var err error
	switch {
	case data.Query != "":
		data.Searching = true
		data.Results, err = pc.store.SearchPosts(data.Query)
	case data.Category != "":
		data.Results, err = pc.store.PostsByCategory(data.Category)
	default:
		err = pc.loadSections(&data)
	}
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	pc.render(w, r, http.StatusOK, "home", data)
}

func (pc *PageController) loadSections(data *homePage) error {
	var err error
	if data.Featured, err = pc.store.FeaturedPosts(); err != nil {
		return err
	}
	if data.Popular, err = pc.store.PopularPosts(); err != nil {
		return err
	}
	if data.Trending, err = pc.store.TrendingPosts(); err != nil {
		return err
	}
	data.Recommendations, err = pc.store.DailyRecommendations()
	return err
}

// Post renders a post with its comments and records the visitor's view.
func (pc *PageController) Post(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.NotFound(w, r)
		return
	}

	sess := session(r)
	post, err := pc.lookupPost(sess, id)
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	if post == nil {
		pc.render(w, r, http.StatusNotFound, "not_found", "文章不存在")
		return
	}

	comments, err := pc.store.CommentsByPost(id)
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	pc.render(w, r, http.StatusOK, "show", struct {
		Post     *models.Post
		Comments []*models.Comment
		Liked    bool
	}{
		Post:     post,
		Comments: comments,
		Liked:    sess != nil && sess.HasLiked(id),
	})
}

// lookupPost counts the view when a session is present and otherwise
// only reads the post. It returns nil for an unknown id.
func (pc *PageController) lookupPost(sess *sessions.Session, id int) (*models.Post, error) {
	if sess != nil {
		return pc.store.ViewPost(sess, id)
	}
	post, _, err := pc.store.Post(id)
	return post, err
}

// About renders the informational page.
func (pc *PageController) About(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.store.AllPosts()
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	pc.render(w, r, http.StatusOK, "about", struct {
		Posts      int
		Categories int
	}{
		Posts:      len(posts),
		Categories: len(pc.store.Categories()),
	})
}

// NotFound renders the 404 page for unmatched web routes and answers API
// paths with the JSON error envelope.
func (pc *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	if isAPI(r) {
		pc.sendError(w, r, "Not found", http.StatusNotFound)
		return
	}
	pc.render(w, r, http.StatusNotFound, "not_found", "页面不存在")
}

// render executes into a buffer first so a template error can still
// produce a clean 500.
func (pc *PageController) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	tmpl, ok := pc.templates[name]
	if !ok {
		pc.sendError(w, r, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
