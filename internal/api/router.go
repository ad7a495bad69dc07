package api

import (
	"io/fs"
	"net/http"

	"github.com/leanttro/feiras-de-rua/docs"
	"github.com/leanttro/feiras-de-rua/internal/api/handlers"
	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/pkg/config"
	"github.com/leanttro/feiras-de-rua/pkg/middleware"
	"github.com/leanttro/feiras-de-rua/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRouter(
	serverCfg *config.ServerConfig,
	marketHandler *handlers.MarketHandler,
	submissionHandler *handlers.SubmissionHandler,
	chatHandler *handlers.ChatHandler,
	staticHandler *handlers.StaticHandler,
	appLogger *zap.Logger,
) *fiber.App {
	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		appLogger.Fatal("Embedded templates missing", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		Views:        html.NewFileSystem(http.FS(templates), ".html"),
		UnescapePath: true,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Erro interno no servidor"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			} else {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": message,
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	_ = docs.SwaggerInfo // registers the OpenAPI document
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	api := app.Group("/api")
	api.Get("/feiras", marketHandler.List(models.ListingFeiras))
	api.Get("/feiras/tipos", marketHandler.Types)
	api.Get("/feiras_livres", marketHandler.List(models.ListingFeirasLivres))
	api.Get("/gastronomicas", marketHandler.List(models.ListingGastronomicas))
	api.Get("/artesanais", marketHandler.List(models.ListingArtesanais))
	api.Get("/outrasfeiras", marketHandler.List(models.ListingOutrasFeiras))
	api.Get("/filtros", marketHandler.Filters)
	api.Get("/blog", marketHandler.List(models.ListingBlog))
	api.Post("/chat", chatHandler.Chat)

	app.Post("/submit-fair", submissionHandler.Submit)

	// Detail pages
	for _, page := range models.DetailPages {
		app.Get(page.URLPrefix+":slug", marketHandler.Detail(page))
	}

	app.Get("/sitemap.xml", staticHandler.Sitemap)
	app.Get("/", staticHandler.Index)
	app.Get("/*", staticHandler.Asset)

	return app
}
