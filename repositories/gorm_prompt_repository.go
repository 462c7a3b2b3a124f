package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prompthub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const BackendPersistent = "persistent"

type gormPromptRepository struct {
	db *gorm.DB
}

func NewGormPromptRepository(db *gorm.DB) PromptRepository {
	return &gormPromptRepository{db: db}
}

func (r *gormPromptRepository) Backend() string {
	return BackendPersistent
}

func (r *gormPromptRepository) List(ctx context.Context, filter models.PromptFilter) ([]models.Prompt, int64, error) {
	var prompts []models.Prompt
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Prompt{})

	if filter.PlatformType != "" {
		query = query.Where("platform_type = ?", filter.PlatformType)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count prompts: %w", err)
	}

	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumn(filter.Sort)}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&prompts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list prompts: %w", err)
	}

	return prompts, total, nil
}

func (r *gormPromptRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Prompt{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}
	return total, nil
}

func (r *gormPromptRepository) GetByID(ctx context.Context, id uint) (*models.Prompt, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *gormPromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	if err := r.db.WithContext(ctx).Create(prompt).Error; err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}
	return nil
}

func (r *gormPromptRepository) Update(ctx context.Context, id uint, req models.PromptRequest) (*models.Prompt, error) {
	var updated models.Prompt
	updated.Apply(req)

	var out *models.Prompt
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Prompt{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":         updated.Title,
			"description":   updated.Description,
			"content":       updated.Content,
			"platform":      updated.Platform,
			"platform_type": updated.PlatformType,
			"category":      updated.Category,
			"tags":          updated.Tags,
		})
		if res.Error != nil {
			return fmt.Errorf("update prompt: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrPromptNotFound
		}

		var err error
		out, err = r.first(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormPromptRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Prompt{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete prompt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrPromptNotFound
	}
	return nil
}

func (r *gormPromptRepository) IncrementViews(ctx context.Context, id uint) (*models.Prompt, error) {
	var out *models.Prompt
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.increment(tx, id, "views"); err != nil {
			return err
		}
		var err error
		out, err = r.first(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormPromptRepository) IncrementLikes(ctx context.Context, id uint) (int, error) {
	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.increment(tx, id, "likes"); err != nil {
			return err
		}
		return tx.Model(&models.Prompt{}).Where("id = ?", id).Pluck("likes", &likes).Error
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

func (r *gormPromptRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// increment bumps a counter column with a single UPDATE.
func (r *gormPromptRepository) increment(tx *gorm.DB, id uint, column string) error {
	res := tx.Model(&models.Prompt{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("increment %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrPromptNotFound
	}
	return nil
}

func (r *gormPromptRepository) first(db *gorm.DB, id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	err := db.First(&prompt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPromptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return &prompt, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
