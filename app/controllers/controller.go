package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"wacblog/app/services"
	"wacblog/app/sessions"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// base carries what every controller needs: the store and a logger.
type base struct {
	store  *services.Store
	logger *zap.Logger
}

func newBase(store *services.Store, logger *zap.Logger) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{store: store, logger: logger}
}

// Helper methods for consistent response handling

func (b base) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (b base) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if isAPI(r) {
		b.sendJSON(w, status, map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}

// serverError logs a store failure and answers 500.
func (b base) serverError(w http.ResponseWriter, r *http.Request, err error) {
	b.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	b.sendError(w, r, "Internal server error", http.StatusInternalServerError)
}

func isAPI(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

// pathID reads a numeric route variable.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// session returns the visitor session attached by the session middleware,
// or nil when the request carries none.
func session(r *http.Request) *sessions.Session {
	sess, _ := sessions.FromContext(r.Context())
	return sess
}
