// Package sessions tracks the per-visitor liked and viewed sets. Sessions
// live in process memory only and are gone after a restart.
package sessions

import (
	"sync"

	"github.com/google/uuid"
)

// Session holds the ids a visitor has liked and viewed, in the order the
// ids were added.
type Session struct {
	ID string

	mu     sync.RWMutex
	liked  []int
	viewed []int
}

// New creates an empty session with a random id.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// HasLiked reports whether postID is in the liked set.
func (s *Session) HasLiked(postID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.liked, postID)
}

// AddLike puts postID in the liked set.
func (s *Session) AddLike(postID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(s.liked, postID) {
		s.liked = append(s.liked, postID)
	}
}

// RemoveLike drops postID from the liked set.
func (s *Session) RemoveLike(postID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = without(s.liked, postID)
}

// HasViewed reports whether postID is in the viewed set.
func (s *Session) HasViewed(postID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.viewed, postID)
}

// AddView puts postID in the viewed set.
func (s *Session) AddView(postID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(s.viewed, postID) {
		s.viewed = append(s.viewed, postID)
	}
}

// LikedPosts returns a copy of the liked set.
func (s *Session) LikedPosts() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int{}, s.liked...)
}

// ViewedPosts returns a copy of the viewed set.
func (s *Session) ViewedPosts() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int{}, s.viewed...)
}
