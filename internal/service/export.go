package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/journalist-portfolio-api/internal/models"
)

// Export streams every article (drafts included) to the response in the
// requested format. Intended as an admin backup, so it writes directly to
// the wire instead of buffering the whole archive.
func (s *articleService) Export(ctx context.Context, w http.ResponseWriter, format string) error {
	s.log.Info().Str("format", format).Msg("Starting articles export")

	switch format {
	case "ndjson":
		return s.exportNDJSON(ctx, w)
	case "csv":
		return s.exportCSV(ctx, w)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *articleService) exportNDJSON(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", "attachment; filename=articles.ndjson")

	flusher, _ := w.(http.Flusher)
	count := 0

	err := s.repo.StreamAll(ctx, func(article *models.Article) error {
		data, err := json.Marshal(article)
		if err != nil {
			return err
		}
		w.Write(data)
		w.Write([]byte("\n"))
		count++

		// Flush every 100 records for streaming
		if count%100 == 0 && flusher != nil {
			flusher.Flush()
		}
		return nil
	})

	s.log.Info().Int("count", count).Msg("Articles export completed")
	return err
}

func (s *articleService) exportCSV(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=articles.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"id", "title", "excerpt", "featured_image", "published",
		"published_at", "created_at", "updated_at", "slug", "category",
		"tags", "reading_time",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	count := 0
	err := s.repo.StreamAll(ctx, func(article *models.Article) error {
		publishedAt := ""
		if article.PublishedAt != nil {
			publishedAt = article.PublishedAt.Format(time.RFC3339)
		}

		record := []string{
			article.ID,
			article.Title,
			article.Excerpt,
			article.FeaturedImage,
			strconv.FormatBool(article.Published),
			publishedAt,
			article.CreatedAt.Format(time.RFC3339),
			article.UpdatedAt.Format(time.RFC3339),
			article.Slug,
			article.Category,
			strings.Join(article.Tags, ","),
			strconv.Itoa(article.ReadingTime),
		}
		count++
		return writer.Write(record)
	})

	s.log.Info().Int("count", count).Msg("Articles export completed")
	return err
}
