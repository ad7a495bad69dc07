package handlers

import (
	"os"
	"path"
	"path/filepath"

	"github.com/leanttro/feiras-de-rua/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StaticHandler serves the landing page, static assets and the sitemap.
type StaticHandler struct {
	dir            string
	index          string
	sitemapService *service.SitemapService
	logger         *zap.Logger
}

func NewStaticHandler(dir, index string, sitemapService *service.SitemapService, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{
		dir:            dir,
		index:          index,
		sitemapService: sitemapService,
		logger:         logger,
	}
}

func (h *StaticHandler) Index(c *fiber.Ctx) error {
	indexPath := filepath.Join(h.dir, h.index)
	if !fileExists(indexPath) {
		h.logger.Warn("Landing page not found", zap.String("path", indexPath))
		return c.Status(fiber.StatusNotFound).SendString("Página inicial não encontrada")
	}
	return c.SendFile(indexPath)
}

// Asset serves a file from the static directory. Only paths with an
// extension are considered; anything else, or a path that does not resolve
// to a regular file, is a 404.
func (h *StaticHandler) Asset(c *fiber.Ctx) error {
	rel := path.Clean("/" + c.Params("*"))
	if path.Ext(rel) == "" {
		return fiber.ErrNotFound
	}

	full := filepath.Join(h.dir, filepath.FromSlash(rel))
	if !fileExists(full) {
		return fiber.ErrNotFound
	}
	return c.SendFile(full)
}

// Sitemap godoc
// @Summary XML sitemap of every detail page
// @Tags site
// @Produce xml
// @Success 200 {string} string
// @Router /sitemap.xml [get]
func (h *StaticHandler) Sitemap(c *fiber.Ctx) error {
	body, err := h.sitemapService.Build(c.Context())
	if err != nil {
		return writeError(c, h.logger, "build sitemap", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	return c.Send(body)
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
