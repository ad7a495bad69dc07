package service

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/internal/repository"

	"go.uber.org/zap"
)

type MarketService struct {
	repo   *repository.MarketRepository
	logger *zap.Logger
}

func NewMarketService(repo *repository.MarketRepository, logger *zap.Logger) *MarketService {
	return &MarketService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the formatted rows of a listing, each with a relative url
// to its detail page. Rows with neither slug nor id are left out.
func (s *MarketService) List(ctx context.Context, listing models.Listing, filter repository.ListFilter) ([]map[string]any, error) {
	rows, err := s.repo.List(ctx, listing, filter)
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		link, ok := s.detailURL(listing, row)
		if !ok {
			continue
		}
		item := FormatRow(row, DateStyleISO)
		item["url"] = link
		result = append(result, item)
	}
	return result, nil
}

func (s *MarketService) detailURL(listing models.Listing, row models.Row) (string, bool) {
	if slug := row.Text("slug"); slug != "" {
		return detailPath(listing.URLPrefix, slug), true
	}

	id, ok := row.ID()
	if !ok {
		s.logger.Warn("Row without slug or id left out of listing", zap.String("listing", listing.Name))
		return "", false
	}

	s.logger.Warn("Row without slug, linking by id",
		zap.String("listing", listing.Name),
		zap.Int64("id", id),
	)
	return listing.URLPrefix + strconv.FormatInt(id, 10), true
}

// detailPath is the path of a detail page; the slug is escaped as one
// path segment.
func detailPath(prefix, slug string) string {
	return prefix + url.PathEscape(slug)
}

// Types returns the distinct non-empty market categories.
func (s *MarketService) Types(ctx context.Context) ([]string, error) {
	types, err := s.repo.Distinct(ctx, models.ListingFeiras.Table, "tipo")
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}

// RegionFilters returns the known neighborhoods grouped by region.
func (s *MarketService) RegionFilters(ctx context.Context) (map[models.Region][]string, error) {
	bairros, err := s.repo.Distinct(ctx, models.ListingFeiras.Table, "bairro")
	if err != nil {
		return nil, err
	}
	return GroupByRegion(bairros), nil
}

// Detail returns one row of a detail page formatted for HTML. key is the
// slug, or the numeric id that listings link to when a row has no slug.
func (s *MarketService) Detail(ctx context.Context, page models.DetailPage, key string) (map[string]any, error) {
	row, err := s.repo.FindBySlug(ctx, page.Table, key)
	if errors.Is(err, repository.ErrNotFound) {
		id, convErr := strconv.ParseInt(key, 10, 64)
		if convErr != nil {
			return nil, ErrNotFound
		}
		row, err = s.repo.FindByID(ctx, page.Table, id)
	}
	if err != nil {
		return nil, err
	}
	return FormatRow(row, DateStyleHTML), nil
}
