package handlers

import (
	"errors"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/internal/repository"
	"github.com/leanttro/feiras-de-rua/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MarketHandler struct {
	marketService *service.MarketService
	logger        *zap.Logger
}

func NewMarketHandler(marketService *service.MarketService, logger *zap.Logger) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
		logger:        logger,
	}
}

// List godoc
// @Summary List markets
// @Description List rows of a market listing with optional filters
// @Tags feiras
// @Produce json
// @Param tipo query string false "Category substring, case-insensitive"
// @Param bairro query string false "Exact neighborhood"
// @Param limite query int false "Maximum rows"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/feiras [get]
func (h *MarketHandler) List(listing models.Listing) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limite", 0)
		if limit < 0 {
			limit = 0
		}
		filter := repository.ListFilter{
			Tipo:   c.Query("tipo"),
			Bairro: c.Query("bairro"),
			Limit:  uint64(limit),
		}

		items, err := h.marketService.List(c.Context(), listing, filter)
		if err != nil {
			return writeError(c, h.logger, "list "+listing.Name, err)
		}
		return c.JSON(items)
	}
}

// Types godoc
// @Summary List market categories
// @Tags feiras
// @Produce json
// @Success 200 {array} string
// @Router /api/feiras/tipos [get]
func (h *MarketHandler) Types(c *fiber.Ctx) error {
	types, err := h.marketService.Types(c.Context())
	if err != nil {
		return writeError(c, h.logger, "list types", err)
	}
	return c.JSON(types)
}

// Filters godoc
// @Summary Neighborhoods grouped by region
// @Tags feiras
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/filtros [get]
func (h *MarketHandler) Filters(c *fiber.Ctx) error {
	filters, err := h.marketService.RegionFilters(c.Context())
	if err != nil {
		return writeError(c, h.logger, "list filters", err)
	}
	return c.JSON(filters)
}

// Detail renders the HTML page of one row, or a 404 page.
func (h *MarketHandler) Detail(page models.DetailPage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := h.marketService.Detail(c.Context(), page, c.Params("slug"))
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{
				"Path": c.Path(),
			})
		}
		if err != nil {
			return writeError(c, h.logger, "detail "+page.Table, err)
		}

		return c.Render(page.Template, fiber.Map{
			"Item": item,
		})
	}
}
