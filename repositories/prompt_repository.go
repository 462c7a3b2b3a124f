package repositories

import (
	"context"

	"prompthub/models"
)

// PromptRepository is the contract both backends implement. Lookups and
// mutations on a missing id return models.ErrorNotFound.
type PromptRepository interface {
	Backend() string
	List(ctx context.Context, filter models.PromptFilter) ([]models.Prompt, int64, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*models.Prompt, error)
	Create(ctx context.Context, prompt *models.Prompt) error
	Update(ctx context.Context, id uint, req models.PromptRequest) (*models.Prompt, error)
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) (*models.Prompt, error)
	IncrementLikes(ctx context.Context, id uint) (int, error)
	Close() error
}

func sortColumn(key models.SortKey) string {
	switch key {
	case models.SortViews:
		return "views"
	case models.SortLikes:
		return "likes"
	default:
		return "created_at"
	}
}
