package services

import (
	"context"
	"math"
	"time"

	"prompthub/logger"
	"prompthub/models"
	"prompthub/repositories"

	"go.uber.org/zap"
)

type PromptService interface {
	GetPrompts(ctx context.Context, params models.PromptListParams) (*models.PaginatedPrompts, error)
	GetPrompt(ctx context.Context, id uint) (*models.Prompt, error)
	CreatePrompt(ctx context.Context, req models.PromptRequest) (*models.Prompt, error)
	UpdatePrompt(ctx context.Context, id uint, req models.PromptRequest) (*models.Prompt, error)
	DeletePrompt(ctx context.Context, id uint) error
	LikePrompt(ctx context.Context, id uint) (*models.LikeResponse, error)
	GetMeta(ctx context.Context) (*models.MetaResponse, error)
}

type promptService struct {
	promptRepo repositories.PromptRepository
	now        func() time.Time
}

func NewPromptService(promptRepo repositories.PromptRepository) PromptService {
	return &promptService{
		promptRepo: promptRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *promptService) GetPrompts(ctx context.Context, params models.PromptListParams) (*models.PaginatedPrompts, error) {
	params = normalizeListParams(params)

	items, total, err := s.promptRepo.List(ctx, models.PromptFilter{
		PlatformType: activeFilter(params.PlatformType),
		Platform:     activeFilter(params.Platform),
		Category:     activeFilter(params.Category),
		Search:       params.Search,
		Sort:         params.Sort,
		Offset:       pageOffset(params.Page, params.PageSize),
		Limit:        params.PageSize,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Prompt{}
	}

	return &models.PaginatedPrompts{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    items,
	}, nil
}

// GetPrompt counts every successful read as a view.
func (s *promptService) GetPrompt(ctx context.Context, id uint) (*models.Prompt, error) {
	return s.promptRepo.IncrementViews(ctx, id)
}

func (s *promptService) CreatePrompt(ctx context.Context, req models.PromptRequest) (*models.Prompt, error) {
	prompt := &models.Prompt{
		Author:    models.AnonymousAuthor,
		AuthorID:  models.AnonymousAuthorID,
		Likes:     0,
		Views:     0,
		CreatedAt: s.now(),
		Thumbnail: nil,
	}
	prompt.Apply(req)

	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		return nil, err
	}

	logger.Log.Info("prompt created",
		zap.Uint("id", prompt.ID),
		zap.String("platform", prompt.Platform),
		zap.String("backend", s.promptRepo.Backend()))

	return prompt, nil
}

func (s *promptService) UpdatePrompt(ctx context.Context, id uint, req models.PromptRequest) (*models.Prompt, error) {
	return s.promptRepo.Update(ctx, id, req)
}

func (s *promptService) DeletePrompt(ctx context.Context, id uint) error {
	if err := s.promptRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("prompt deleted", zap.Uint("id", id))
	return nil
}

func (s *promptService) LikePrompt(ctx context.Context, id uint) (*models.LikeResponse, error) {
	likes, err := s.promptRepo.IncrementLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.LikeResponse{Likes: likes}, nil
}

func (s *promptService) GetMeta(ctx context.Context) (*models.MetaResponse, error) {
	total, err := s.promptRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.MetaResponse{
		Platforms:       models.Platforms,
		ImageCategories: models.ImageCategories,
		TextCategories:  models.TextCategories,
		TotalPrompts:    total,
	}, nil
}

// normalizeListParams fills defaults for callers that bypass HTTP binding.
// Values the binding layer would reject are clamped rather than refused.
func normalizeListParams(params models.PromptListParams) models.PromptListParams {
	if params.Page < 1 {
		params.Page = models.DefaultPage
	}
	if params.PageSize < 1 {
		params.PageSize = models.DefaultPageSize
	}
	if params.PageSize > models.MaxPageSize {
		params.PageSize = models.MaxPageSize
	}
	switch params.Sort {
	case models.SortLatest, models.SortViews, models.SortLikes:
	default:
		params.Sort = models.SortLatest
	}
	return params
}

// pageOffset saturates at math.MaxInt so a huge page lands past the end
// instead of wrapping negative.
func pageOffset(page, pageSize int) int {
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// activeFilter maps the "all" sentinel and blanks to "no filter".
func activeFilter(value string) string {
	if value == "" || value == models.FilterAll {
		return ""
	}
	return value
}
