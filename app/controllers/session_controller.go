package controllers

import (
	"net/http"

	"go.uber.org/zap"
)

// SessionController exposes the visitor's own session state.
type SessionController struct {
	base
}

func NewSessionController(logger *zap.Logger) *SessionController {
	return &SessionController{base: newBase(nil, logger)}
}

// Show returns the session id with its liked and viewed posts.
func (sc *SessionController) Show(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		sc.sendError(w, r, "No session", http.StatusInternalServerError)
		return
	}
	sc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"id":     sess.ID,
		"liked":  sess.LikedPosts(),
		"viewed": sess.ViewedPosts(),
	})
}
