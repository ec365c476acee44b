// Package metrics defines the prometheus collectors exported by the blog.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	PostLikes       *prometheus.CounterVec
	PostViews       prometheus.Counter
	CommentsCreated *prometheus.CounterVec
	CommentLikes    prometheus.Counter
	Searches        prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PostLikes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wacblog",
			Name:      "post_likes_total",
			Help:      "Post like toggles by resulting action.",
		}, []string{"action"}),
		PostViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wacblog",
			Name:      "post_views_total",
			Help:      "First-time post views per session.",
		}),
		CommentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wacblog",
			Name:      "comments_created_total",
			Help:      "Comments appended, split by whether the target post exists.",
		}, []string{"orphaned"}),
		CommentLikes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wacblog",
			Name:      "comment_likes_total",
			Help:      "Comment likes.",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wacblog",
			Name:      "searches_total",
			Help:      "Post searches with a non-empty query.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wacblog",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.PostLikes, m.PostViews, m.CommentsCreated, m.CommentLikes, m.Searches, m.RequestDuration)
	return m
}

func (m *Metrics) PostLiked(liked bool) {
	if m == nil {
		return
	}
	action := "unlike"
	if liked {
		action = "like"
	}
	m.PostLikes.WithLabelValues(action).Inc()
}

func (m *Metrics) PostViewed() {
	if m == nil {
		return
	}
	m.PostViews.Inc()
}

func (m *Metrics) CommentCreated(orphaned bool) {
	if m == nil {
		return
	}
	m.CommentsCreated.WithLabelValues(strconv.FormatBool(orphaned)).Inc()
}

func (m *Metrics) CommentLiked() {
	if m == nil {
		return
	}
	m.CommentLikes.Inc()
}

func (m *Metrics) Searched() {
	if m == nil {
		return
	}
	m.Searches.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
