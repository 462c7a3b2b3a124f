package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AnonymousAuthor   = "익명 사용자"
	AnonymousAuthorID = 999
)

type Prompt struct {
	ID           uint                        `json:"id" gorm:"primarykey"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Content      string                      `json:"content" gorm:"type:text"`
	Platform     string                      `json:"platform" gorm:"index"`
	PlatformType string                      `json:"platform_type" gorm:"index"`
	Category     string                      `json:"category" gorm:"index"`
	Author       string                      `json:"author"`
	AuthorID     uint                        `json:"author_id"`
	Likes        int                         `json:"likes" gorm:"not null;default:0"`
	Views        int                         `json:"views" gorm:"not null;default:0"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"index"`
	Thumbnail    *string                     `json:"thumbnail"`
}

// Apply overwrites the user-editable fields. Counters, authorship, the
// creation time and the thumbnail are left as they are.
func (p *Prompt) Apply(req PromptRequest) {
	p.Title = req.Title
	p.Description = req.Description
	p.Content = req.Content
	p.Platform = req.Platform
	p.PlatformType = req.PlatformType
	p.Category = req.Category
	p.Tags = datatypes.JSONSlice[string](req.TagList())
}

// Clone returns a deep copy so callers can't reach into a store's state.
func (p Prompt) Clone() Prompt {
	out := p
	if p.Tags != nil {
		out.Tags = append(datatypes.JSONSlice[string]{}, p.Tags...)
	}
	if p.Thumbnail != nil {
		thumb := *p.Thumbnail
		out.Thumbnail = &thumb
	}
	return out
}
