package models

import (
	"errors"
	"time"
)

// Validate checks that the comment is structurally sound
func (c *Comment) Validate() error {
	if c == nil {
		return errors.New("comment cannot be nil")
	}
	return validate.Struct(c)
}

// BeforeCreate fills in the publish date when the caller left it empty
func (c *Comment) BeforeCreate(now time.Time) {
	if c.PublishDate == "" {
		c.PublishDate = now.UTC().Format(DateLayout)
	}
}

// Clone returns a copy of the comment
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// NewComment builds an unsaved comment for postID from caller input.
func NewComment(postID int, in CommentInput) *Comment {
	return &Comment{
		PostID:      postID,
		Author:      in.Author,
		Content:     in.Content,
		Avatar:      in.Avatar,
		PublishDate: in.PublishDate,
		Likes:       in.Likes,
	}
}
