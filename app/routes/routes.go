package routes

import (
	"html/template"
	"net/http"

	"wacblog/app/controllers"
	"wacblog/app/metrics"
	"wacblog/app/middleware"
	"wacblog/app/services"
	"wacblog/app/sessions"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Dependencies are the collaborators the router hands to its controllers.
type Dependencies struct {
	Store     *services.Store
	Sessions  *sessions.Manager
	Templates map[string]*template.Template
	Logger    *zap.Logger

	// Metrics and Gatherer back the request histogram and /metrics. Both
	// are optional.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	// Limiter throttles mutating API calls; nil disables it.
	Limiter *rate.Limiter
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(deps.Metrics))

	postController := controllers.NewPostController(deps.Store, logger)
	commentController := controllers.NewCommentController(deps.Store, logger)
	catalogController := controllers.NewCatalogController(deps.Store, logger)
	sessionController := controllers.NewSessionController(logger)
	pageController := controllers.NewPageController(deps.Store, deps.Templates, logger)

	router.NotFoundHandler = middleware.Logger(logger)(http.HandlerFunc(pageController.NotFound))

	// Operational endpoints, outside of visitor sessions
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	}).Methods("GET")
	if deps.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}

	site := router.PathPrefix("/").Subrouter()
	site.Use(deps.Sessions.Middleware)

	// Web routes
	site.HandleFunc("/", pageController.Home).Methods("GET")
	site.HandleFunc("/post/{id:[0-9]+}", pageController.Post).Methods("GET")
	site.HandleFunc("/about", pageController.About).Methods("GET")

	// API routes
	api := site.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.Use(middleware.RateLimit(deps.Limiter))

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/featured", postController.Featured).Methods("GET")
	posts.HandleFunc("/popular", postController.Popular).Methods("GET")
	posts.HandleFunc("/trending", postController.Trending).Methods("GET")
	posts.HandleFunc("/recommendations", postController.Recommendations).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}/like", postController.Like).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/view", postController.View).Methods("POST")

	// Comments API endpoints
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/like", commentController.Like).Methods("POST")

	// Catalog API endpoints
	api.HandleFunc("/categories", catalogController.Categories).Methods("GET")
	api.HandleFunc("/categories/{id}/posts", catalogController.CategoryPosts).Methods("GET")
	api.HandleFunc("/keywords", catalogController.Keywords).Methods("GET")
	api.HandleFunc("/session", sessionController.Show).Methods("GET")

	return router
}
