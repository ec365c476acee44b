package controllers

import (
	"net/http"

	"wacblog/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CatalogController serves the static category and keyword tables.
type CatalogController struct {
	base
}

func NewCatalogController(store *services.Store, logger *zap.Logger) *CatalogController {
	return &CatalogController{base: newBase(store, logger)}
}

func (cc *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	cc.sendJSON(w, http.StatusOK, cc.store.Categories())
}

// CategoryPosts lists the posts of one category; an unknown category
// yields an empty list.
func (cc *CatalogController) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := cc.store.PostsByCategory(mux.Vars(r)["id"])
	if err != nil {
		cc.serverError(w, r, err)
		return
	}
	cc.sendJSON(w, http.StatusOK, posts)
}

func (cc *CatalogController) Keywords(w http.ResponseWriter, r *http.Request) {
	cc.sendJSON(w, http.StatusOK, cc.store.HotKeywords())
}
