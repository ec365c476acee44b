package controllers

import (
	"encoding/json"
	"net/http"

	"wacblog/app/models"
	"wacblog/app/services"

	"go.uber.org/zap"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	base
}

// NewCommentController creates a new CommentController
func NewCommentController(store *services.Store, logger *zap.Logger) *CommentController {
	return &CommentController{base: newBase(store, logger)}
}

// Index lists the comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		cc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comments, err := cc.store.CommentsByPost(postID)
	if err != nil {
		cc.serverError(w, r, err)
		return
	}
	cc.sendJSON(w, http.StatusOK, comments)
}

// Create appends a comment to a post. The post does not have to exist.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		cc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var in models.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		cc.sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := cc.store.AddComment(postID, in)
	if err != nil {
		cc.serverError(w, r, err)
		return
	}
	cc.sendJSON(w, http.StatusCreated, comment)
}

// Like adds a like to a comment. An unknown comment is a silent no-op
// answered with 204.
func (cc *CommentController) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		cc.sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	comment, err := cc.store.LikeComment(id)
	if err != nil {
		cc.serverError(w, r, err)
		return
	}
	if comment == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	cc.sendJSON(w, http.StatusOK, comment)
}
