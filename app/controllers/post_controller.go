package controllers

import (
	"net/http"
	"strings"

	"wacblog/app/models"
	"wacblog/app/services"

	"go.uber.org/zap"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	base
}

// NewPostController creates a new PostController
func NewPostController(store *services.Store, logger *zap.Logger) *PostController {
	return &PostController{base: newBase(store, logger)}
}

// Index lists posts. A q parameter searches, a category parameter filters.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		posts []*models.Post
		err   error
	)
	switch {
	case strings.TrimSpace(query.Get("q")) != "":
		posts, err = pc.store.SearchPosts(query.Get("q"))
	case query.Get("category") != "":
		posts, err = pc.store.PostsByCategory(query.Get("category"))
	default:
		posts, err = pc.store.AllPosts()
	}
	pc.sendPosts(w, r, posts, err)
}

// Featured lists the featured posts
func (pc *PostController) Featured(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.store.FeaturedPosts()
	pc.sendPosts(w, r, posts, err)
}

// Popular lists the most viewed posts
func (pc *PostController) Popular(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.store.PopularPosts()
	pc.sendPosts(w, r, posts, err)
}

// Trending lists the most liked posts
func (pc *PostController) Trending(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.store.TrendingPosts()
	pc.sendPosts(w, r, posts, err)
}

// Recommendations lists the daily recommendations
func (pc *PostController) Recommendations(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.store.DailyRecommendations()
	pc.sendPosts(w, r, posts, err)
}

func (pc *PostController) sendPosts(w http.ResponseWriter, r *http.Request, posts []*models.Post, err error) {
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, ok, err := pc.store.Post(id)
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	if !ok {
		pc.sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}
	pc.sendJSON(w, http.StatusOK, post)
}

// Like toggles the visitor's like on a post. An unknown post is a silent
// no-op answered with 204.
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	sess := session(r)
	post, err := pc.store.LikePost(sess, id)
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	if post == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	pc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"post":  post,
		"liked": sess.HasLiked(id),
	})
}

// View records the visitor's first view of a post. An unknown post is a
// silent no-op answered with 204.
func (pc *PostController) View(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	sess := session(r)
	post, err := pc.store.ViewPost(sess, id)
	if err != nil {
		pc.serverError(w, r, err)
		return
	}
	if post == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	pc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"post":   post,
		"viewed": sess.HasViewed(id),
	})
}
