package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/journalist-portfolio-api/internal/models"
)

func TestNotConfiguredArticleRepo(t *testing.T) {
	repos := NewNotConfigured()
	repo := repos.Article
	ctx := context.Background()

	t.Run("reads come back empty", func(t *testing.T) {
		articles, err := repo.List(ctx, ArticleFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(articles) != 0 {
			t.Errorf("List returned %d articles", len(articles))
		}

		if a, err := repo.GetByID(ctx, "1"); err != nil || a != nil {
			t.Errorf("GetByID = (%v, %v), want (nil, nil)", a, err)
		}
		if a, err := repo.GetBySlug(ctx, "slug", true); err != nil || a != nil {
			t.Errorf("GetBySlug = (%v, %v), want (nil, nil)", a, err)
		}
		if taken, err := repo.SlugExists(ctx, "slug", ""); err != nil || taken {
			t.Errorf("SlugExists = (%v, %v)", taken, err)
		}
		if count, err := repo.Count(ctx); err != nil || count != 0 {
			t.Errorf("Count = (%d, %v)", count, err)
		}

		calls := 0
		if err := repo.StreamAll(ctx, func(*models.Article) error {
			calls++
			return nil
		}); err != nil {
			t.Errorf("StreamAll: %v", err)
		}
		if calls != 0 {
			t.Errorf("StreamAll invoked callback %d times", calls)
		}
	})

	t.Run("writes fail loudly", func(t *testing.T) {
		if err := repo.Create(ctx, &models.Article{}); !errors.Is(err, models.ErrNotConfigured) {
			t.Errorf("Create err = %v", err)
		}
		if err := repo.Update(ctx, &models.Article{}); !errors.Is(err, models.ErrNotConfigured) {
			t.Errorf("Update err = %v", err)
		}
		if _, err := repo.SetPublished(ctx, "1", true, nil); !errors.Is(err, models.ErrNotConfigured) {
			t.Errorf("SetPublished err = %v", err)
		}
		if _, err := repo.Delete(ctx, "1"); !errors.Is(err, models.ErrNotConfigured) {
			t.Errorf("Delete err = %v", err)
		}
	})
}

func TestNotConfiguredUserRepo(t *testing.T) {
	repos := NewNotConfigured()
	repo := repos.User
	ctx := context.Background()

	if err := repo.Create(ctx, &models.User{}); !errors.Is(err, models.ErrNotConfigured) {
		t.Errorf("Create err = %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "anna@example.com"); !errors.Is(err, models.ErrNotConfigured) {
		t.Errorf("GetByEmail err = %v", err)
	}
	// Count reports zero so the admin bootstrap stays a no-op.
	if count, err := repo.Count(ctx); err != nil || count != 0 {
		t.Errorf("Count = (%d, %v)", count, err)
	}
}
