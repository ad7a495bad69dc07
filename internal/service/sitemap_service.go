package service

import (
	"context"
	"encoding/xml"
	"errors"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/internal/repository"

	"go.uber.org/zap"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type SitemapService struct {
	repo    *repository.MarketRepository
	baseURL string
	pages   []models.DetailPage
	logger  *zap.Logger
}

func NewSitemapService(repo *repository.MarketRepository, baseURL string, logger *zap.Logger) *SitemapService {
	return &SitemapService{
		repo:    repo,
		baseURL: baseURL,
		pages:   models.DetailPages,
		logger:  logger,
	}
}

// Build renders the sitemap document. Tables missing from the database are
// skipped; any other failure aborts.
func (s *SitemapService) Build(ctx context.Context) ([]byte, error) {
	set := urlSet{
		Xmlns: sitemapNamespace,
		URLs:  []sitemapURL{{Loc: s.baseURL + "/"}},
	}

	for _, page := range s.pages {
		rows, err := s.repo.Slugs(ctx, page.Table, page.DateField)
		if err != nil {
			var schemaErr *repository.SchemaError
			if errors.As(err, &schemaErr) {
				s.logger.Warn("Skipping table missing from sitemap",
					zap.String("table", page.Table),
					zap.String("object", schemaErr.Object),
				)
				continue
			}
			return nil, err
		}

		for _, row := range rows {
			slug := row.Text("slug")
			if slug == "" {
				continue
			}
			entry := sitemapURL{Loc: s.baseURL + detailPath(page.URLPrefix, slug)}
			if page.DateField != "" {
				if v, ok := row[page.DateField]; ok && (v.Kind == models.KindDate || v.Kind == models.KindTimestamp) {
					entry.LastMod = v.Time.Format("2006-01-02")
				}
			}
			set.URLs = append(set.URLs, entry)
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
