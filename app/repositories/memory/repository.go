// Package memory provides slice-backed repositories. Records are kept in
// insertion order and handed out as copies, so callers never share state
// with the repository.
package memory

import (
	"sync"

	"wacblog/app/models"
	"wacblog/app/repositories"
)

type PostRepository struct {
	posts []*models.Post
	mutex sync.RWMutex
}

type CommentRepository struct {
	comments []*models.Comment
	mutex    sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// PostRepository implementation

func (m *PostRepository) indexOf(id int) int {
	for i, p := range m.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *PostRepository) Save(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if i := m.indexOf(post.ID); i >= 0 {
		m.posts[i] = post.Clone()
		return nil
	}
	m.posts = append(m.posts, post.Clone())
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	return m.posts[i].Clone(), nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, len(m.posts))
	for i, p := range m.posts {
		posts[i] = p.Clone()
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(post.ID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	m.posts[i] = post.Clone()
	return nil
}

func (m *PostRepository) Clear() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = nil
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) indexOf(id int) int {
	for i, c := range m.comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if comment.ID == 0 {
		maxID := 0
		for _, c := range m.comments {
			if c.ID > maxID {
				maxID = c.ID
			}
		}
		comment.ID = maxID + 1
	}
	m.comments = append(m.comments, comment.Clone())
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	return m.comments[i].Clone(), nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := make([]*models.Comment, len(m.comments))
	for i, c := range m.comments {
		comments[i] = c.Clone()
	}
	return comments, nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			comments = append(comments, c.Clone())
		}
	}
	return comments, nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(comment.ID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	m.comments[i] = comment.Clone()
	return nil
}

func (m *CommentRepository) Clear() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.comments = nil
	return nil
}

var (
	_ repositories.PostRepository    = (*PostRepository)(nil)
	_ repositories.CommentRepository = (*CommentRepository)(nil)
)
