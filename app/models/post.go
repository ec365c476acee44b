package models

import (
	"errors"
	"strings"
	"time"
)

// Validate checks that the post is structurally sound
func (p *Post) Validate() error {
	if p == nil {
		return errors.New("post cannot be nil")
	}
	return validate.Struct(p)
}

// Clone returns a deep copy of the post
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	return &c
}

// PublishedAt parses the publish date as midnight UTC.
func (p *Post) PublishedAt() (time.Time, error) {
	return time.Parse(DateLayout, p.PublishDate)
}

// Matches reports whether the lowercased query occurs in the title,
// the excerpt or any tag, ignoring case.
func (p *Post) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Excerpt), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}
