package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"wacblog/app/catalog"
	"wacblog/app/metrics"
	"wacblog/app/models"
	"wacblog/app/repositories"
	"wacblog/app/sessions"

	"go.uber.org/zap"
)

// Result caps for the derived views.
const (
	FeaturedLimit       = 3
	PopularLimit        = 5
	TrendingLimit       = 5
	RecommendationLimit = 3
)

// Store owns the post and comment collections and every query derived
// from them. Each method holds the store mutex for its whole duration, so
// operations never interleave.
//
// Unknown post, comment or category ids are never an error: mutations
// become no-ops and queries return empty results. The returned error is
// reserved for repository failures.
type Store struct {
	mu       sync.Mutex
	posts    repositories.PostRepository
	comments repositories.CommentRepository

	categories  []models.Category
	hotKeywords []string

	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the collectors updated by mutations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithClock overrides the clock used to date new comments.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store over the given repositories. Call Seed
// before serving.
func NewStore(posts repositories.PostRepository, comments repositories.CommentRepository, opts ...Option) *Store {
	s := &Store{
		posts:    posts,
		comments: comments,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces the whole content of the store with c.
func (s *Store) Seed(c *catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.posts.Clear(); err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	if err := s.comments.Clear(); err != nil {
		return fmt.Errorf("failed to clear comments: %w", err)
	}
	for _, p := range c.Posts {
		if err := s.posts.Save(p.Clone()); err != nil {
			return fmt.Errorf("failed to seed post %d: %w", p.ID, err)
		}
	}
	for _, cm := range c.Comments {
		if err := s.comments.Create(cm.Clone()); err != nil {
			return fmt.Errorf("failed to seed comment %d: %w", cm.ID, err)
		}
	}
	s.categories = append([]models.Category{}, c.Categories...)
	s.hotKeywords = append([]string{}, c.HotKeywords...)

	s.logger.Info("store seeded",
		zap.Int("posts", len(c.Posts)),
		zap.Int("comments", len(c.Comments)),
		zap.Int("categories", len(c.Categories)))
	return nil
}

// Categories returns the static category list.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category{}, s.categories...)
}

// HotKeywords returns the static trending keywords.
func (s *Store) HotKeywords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.hotKeywords...)
}

// AllPosts returns every post in seed order.
func (s *Store) AllPosts() ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listPosts()
}

func (s *Store) listPosts() ([]*models.Post, error) {
	posts, err := s.posts.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// Post looks up a single post. The boolean is false for an unknown id.
func (s *Store) Post(id int) (*models.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findPost(id)
}

func (s *Store) findPost(id int) (*models.Post, bool, error) {
	post, err := s.posts.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return post, true, nil
}

// FeaturedPosts returns up to three featured posts in seed order.
func (s *Store) FeaturedPosts() ([]*models.Post, error) {
	return s.filterPosts(func(p *models.Post) bool { return p.Featured }, FeaturedLimit)
}

// PostsByCategory returns the posts filed under categoryID.
func (s *Store) PostsByCategory(categoryID string) ([]*models.Post, error) {
	return s.filterPosts(func(p *models.Post) bool { return p.Category == categoryID }, 0)
}

// PopularPosts returns the five most viewed posts. Ties keep seed order.
func (s *Store) PopularPosts() ([]*models.Post, error) {
	return s.rankPosts(func(p *models.Post) float64 { return float64(p.Views) }, PopularLimit)
}

// TrendingPosts returns the five most liked posts. Ties keep seed order.
func (s *Store) TrendingPosts() ([]*models.Post, error) {
	return s.rankPosts(func(p *models.Post) float64 { return float64(p.Likes) }, TrendingLimit)
}

// SearchPosts matches the trimmed query, ignoring case, against titles,
// excerpts and tags. An empty query returns every post.
func (s *Store) SearchPosts(query string) ([]*models.Post, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.AllPosts()
	}
	s.metrics.Searched()
	lower := strings.ToLower(q)
	return s.filterPosts(func(p *models.Post) bool { return p.Matches(lower) }, 0)
}

// filterPosts keeps matching posts in seed order; limit 0 means no cap.
func (s *Store) filterPosts(keep func(*models.Post) bool, limit int) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.listPosts()
	if err != nil {
		return nil, err
	}
	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if limit > 0 && len(out) == limit {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// rankPosts stable-sorts posts by score, highest first, and keeps the top
// limit.
func (s *Store) rankPosts(score func(*models.Post) float64, limit int) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.listPosts()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return score(posts[i]) > score(posts[j])
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// CommentsByPost returns the comments referencing postID in seed order.
func (s *Store) CommentsByPost(postID int) ([]*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.comments.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of post %d: %w", postID, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// LikePost toggles the session's like on a post and returns the updated
// post. It returns nil for an unknown post or a nil session.
func (s *Store) LikePost(sess *sessions.Session, postID int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess == nil {
		return nil, nil
	}
	post, ok, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("like ignored: unknown post", zap.Int("post", postID))
		return nil, nil
	}

	liked := !sess.HasLiked(postID)
	if liked {
		post.Likes++
	} else if post.Likes > 0 {
		post.Likes--
	}
	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", postID, err)
	}
	if liked {
		sess.AddLike(postID)
	} else {
		sess.RemoveLike(postID)
	}

	s.metrics.PostLiked(liked)
	s.logger.Debug("post like toggled",
		zap.String("session", sess.ID),
		zap.Int("post", postID),
		zap.Bool("liked", liked),
		zap.Int("likes", post.Likes))
	return post, nil
}

// ViewPost counts the first view of a post within a session and returns
// the post. Repeat views leave the counter alone. It returns nil for an
// unknown post or a nil session.
func (s *Store) ViewPost(sess *sessions.Session, postID int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess == nil {
		return nil, nil
	}
	post, ok, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("view ignored: unknown post", zap.Int("post", postID))
		return nil, nil
	}
	if sess.HasViewed(postID) {
		return post, nil
	}

	post.Views++
	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", postID, err)
	}
	sess.AddView(postID)

	s.metrics.PostViewed()
	s.logger.Debug("post viewed",
		zap.String("session", sess.ID),
		zap.Int("post", postID),
		zap.Int("views", post.Views))
	return post, nil
}

// AddComment appends a comment to postID with the next free id and bumps
// the post's comment count. A comment on an unknown post is still stored,
// but no count changes.
func (s *Store) AddComment(postID int, in models.CommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.NewComment(postID, in)
	if comment.Likes < 0 {
		comment.Likes = 0
	}
	comment.BeforeCreate(s.now())
	if err := s.comments.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	post, ok, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	if ok {
		post.Comments++
		if err := s.posts.Update(post); err != nil {
			return nil, fmt.Errorf("failed to update post %d: %w", postID, err)
		}
	} else {
		s.logger.Warn("comment stored for unknown post",
			zap.Int("comment", comment.ID),
			zap.Int("post", postID))
	}

	s.metrics.CommentCreated(!ok)
	s.logger.Debug("comment added", zap.Int("comment", comment.ID), zap.Int("post", postID))
	return comment, nil
}

// LikeComment adds one like to a comment and returns it, or nil when the
// comment does not exist.
func (s *Store) LikeComment(commentID int) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, err := s.comments.GetByID(commentID)
	if errors.Is(err, repositories.ErrNotFound) {
		s.logger.Debug("comment like ignored: unknown comment", zap.Int("comment", commentID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", commentID, err)
	}

	comment.Likes++
	if err := s.comments.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}
	s.metrics.CommentLiked()
	return comment, nil
}
