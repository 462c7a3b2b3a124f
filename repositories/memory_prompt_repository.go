package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"prompthub/models"
)

const BackendMemory = "memory"

// memoryPromptRepository keeps prompts for the lifetime of the process.
// Everything is lost on restart.
type memoryPromptRepository struct {
	mu      sync.RWMutex
	prompts []models.Prompt
	nextID  uint
}

func NewMemoryPromptRepository() PromptRepository {
	return &memoryPromptRepository{nextID: 1}
}

func (r *memoryPromptRepository) Backend() string {
	return BackendMemory
}

func (r *memoryPromptRepository) List(_ context.Context, filter models.PromptFilter) ([]models.Prompt, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keyword := strings.ToLower(filter.Search)
	filtered := make([]models.Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		if filter.PlatformType != "" && p.PlatformType != filter.PlatformType {
			continue
		}
		if filter.Platform != "" && p.Platform != filter.Platform {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.Title), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) {
			continue
		}
		filtered = append(filtered, p)
	}

	less := sortLess(filter.Sort)
	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j])
	})

	total := int64(len(filtered))
	items := []models.Prompt{}
	if filter.Offset >= 0 && filter.Offset < len(filtered) {
		end := filter.Offset + filter.Limit
		if end > len(filtered) {
			end = len(filtered)
		}
		for _, p := range filtered[filter.Offset:end] {
			items = append(items, p.Clone())
		}
	}

	return items, total, nil
}

func (r *memoryPromptRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.prompts)), nil
}

func (r *memoryPromptRepository) GetByID(_ context.Context, id uint) (*models.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrPromptNotFound
	}
	out := r.prompts[i].Clone()
	return &out, nil
}

func (r *memoryPromptRepository) Create(_ context.Context, prompt *models.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prompt.ID = r.nextID
	r.nextID++
	r.prompts = append(r.prompts, prompt.Clone())
	return nil
}

func (r *memoryPromptRepository) Update(_ context.Context, id uint, req models.PromptRequest) (*models.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrPromptNotFound
	}
	r.prompts[i].Apply(req)
	out := r.prompts[i].Clone()
	return &out, nil
}

func (r *memoryPromptRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.ErrPromptNotFound
	}
	r.prompts = append(r.prompts[:i], r.prompts[i+1:]...)
	return nil
}

func (r *memoryPromptRepository) IncrementViews(_ context.Context, id uint) (*models.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrPromptNotFound
	}
	r.prompts[i].Views++
	out := r.prompts[i].Clone()
	return &out, nil
}

func (r *memoryPromptRepository) IncrementLikes(_ context.Context, id uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return 0, models.ErrPromptNotFound
	}
	r.prompts[i].Likes++
	return r.prompts[i].Likes, nil
}

// Close drops every record; the repository stays usable but empty.
func (r *memoryPromptRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = nil
	return nil
}

// indexOf must be called with the lock held.
func (r *memoryPromptRepository) indexOf(id uint) int {
	for i := range r.prompts {
		if r.prompts[i].ID == id {
			return i
		}
	}
	return -1
}

func sortLess(key models.SortKey) func(a, b models.Prompt) bool {
	return func(a, b models.Prompt) bool {
		switch sortColumn(key) {
		case "views":
			if a.Views != b.Views {
				return a.Views > b.Views
			}
		case "likes":
			if a.Likes != b.Likes {
				return a.Likes > b.Likes
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID > b.ID
	}
}
