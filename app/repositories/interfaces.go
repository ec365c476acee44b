package repositories

import "wacblog/app/models"

// PostRepository defines the interface for post data access.
// List returns posts in ascending id order, which is also seed order.
type PostRepository interface {
	Save(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Clear() error
}

// CommentRepository defines the interface for comment data access.
// Create assigns max(existing id)+1 when the comment has no id yet.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	List() ([]*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Clear() error
}
