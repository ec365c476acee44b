package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// DateLayout is the layout of every publish date in the catalog.
const DateLayout = "2006-01-02"

// Post represents a blog article with its engagement counters.
type Post struct {
	ID          int      `json:"id" yaml:"id" validate:"required,gt=0"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Excerpt     string   `json:"excerpt" yaml:"excerpt"`
	Content     string   `json:"content" yaml:"content"`
	Category    string   `json:"category" yaml:"category" validate:"required"`
	Image       string   `json:"image" yaml:"image"`
	Author      string   `json:"author" yaml:"author"`
	PublishDate string   `json:"publishDate" yaml:"publishDate" validate:"required,datetime=2006-01-02"`
	ReadTime    int      `json:"readTime" yaml:"readTime" validate:"gte=0"`
	Likes       int      `json:"likes" yaml:"likes" validate:"gte=0"`
	Views       int      `json:"views" yaml:"views" validate:"gte=0"`
	Comments    int      `json:"comments" yaml:"comments" validate:"gte=0"`
	Tags        []string `json:"tags" yaml:"tags"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

// Comment represents a reply attached to a post.
type Comment struct {
	ID          int    `json:"id" yaml:"id" validate:"required,gt=0"`
	PostID      int    `json:"postId" yaml:"postId" validate:"gte=0"`
	Author      string `json:"author" yaml:"author"`
	Content     string `json:"content" yaml:"content"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	PublishDate string `json:"publishDate" yaml:"publishDate"`
	Likes       int    `json:"likes" yaml:"likes" validate:"gte=0"`
}

// CommentInput carries the caller-supplied fields of a new comment.
// The id and post reference are assigned by the store.
type CommentInput struct {
	Author      string `json:"author"`
	Content     string `json:"content"`
	Avatar      string `json:"avatar"`
	PublishDate string `json:"publishDate"`
	Likes       int    `json:"likes"`
}

// Category is a static topic label. Count is informational and is not
// derived from the posts that reference the category.
type Category struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Name  string `json:"name" yaml:"name" validate:"required"`
	Count int    `json:"count" yaml:"count" validate:"gte=0"`
	Icon  string `json:"icon" yaml:"icon"`
}
