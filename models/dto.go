package models

type SortKey string

const (
	SortLatest SortKey = "latest"
	SortViews  SortKey = "views"
	SortLikes  SortKey = "likes"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 50
)

type PromptRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Content      string   `json:"content"`
	Platform     string   `json:"platform"`
	PlatformType string   `json:"platform_type"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
}

// TagList never returns nil so the stored column is always a JSON array.
func (r PromptRequest) TagList() []string {
	if r.Tags == nil {
		return []string{}
	}
	return append([]string{}, r.Tags...)
}

// PromptPayload is the create/update body. Pointer fields let binding tell a
// missing key from an empty string; tags must be an array, not null.
type PromptPayload struct {
	Title        *string  `json:"title" binding:"required"`
	Description  *string  `json:"description" binding:"required"`
	Content      *string  `json:"content" binding:"required"`
	Platform     *string  `json:"platform" binding:"required"`
	PlatformType *string  `json:"platform_type" binding:"required"`
	Category     *string  `json:"category" binding:"required"`
	Tags         []string `json:"tags" binding:"required"`
}

// Request assumes the payload already passed binding.
func (p PromptPayload) Request() PromptRequest {
	return PromptRequest{
		Title:        deref(p.Title),
		Description:  deref(p.Description),
		Content:      deref(p.Content),
		Platform:     deref(p.Platform),
		PlatformType: deref(p.PlatformType),
		Category:     deref(p.Category),
		Tags:         p.Tags,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type PromptListParams struct {
	Page         int     `form:"page,default=1" binding:"min=1"`
	PageSize     int     `form:"page_size,default=12" binding:"min=1,max=50"`
	Sort         SortKey `form:"sort,default=latest" binding:"oneof=latest views likes"`
	PlatformType string  `form:"platform_type"`
	Platform     string  `form:"platform"`
	Category     string  `form:"category"`
	Search       string  `form:"search"`
}

// PromptFilter is what a repository sees after the service has resolved
// defaults and dropped "all" sentinels.
type PromptFilter struct {
	PlatformType string
	Platform     string
	Category     string
	Search       string
	Sort         SortKey
	Offset       int
	Limit        int
}

type PaginatedPrompts struct {
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Items    []Prompt `json:"items"`
}

type LikeResponse struct {
	Likes int `json:"likes"`
}

type MetaResponse struct {
	Platforms       []string `json:"platforms"`
	ImageCategories []string `json:"image_categories"`
	TextCategories  []string `json:"text_categories"`
	TotalPrompts    int64    `json:"total_prompts"`
}
