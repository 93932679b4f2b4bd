package server

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/config"
	_ "github.com/nachofazah/Ciu-RedSocial/docs"
	"github.com/nachofazah/Ciu-RedSocial/dto"
	"github.com/nachofazah/Ciu-RedSocial/internal/controllers"
	"github.com/nachofazah/Ciu-RedSocial/internal/feed"
	"github.com/nachofazah/Ciu-RedSocial/internal/metrics"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/notify"
	"github.com/nachofazah/Ciu-RedSocial/internal/register"
	"github.com/nachofazah/Ciu-RedSocial/internal/routes"
	"github.com/nachofazah/Ciu-RedSocial/internal/session"
	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
	"github.com/nachofazah/Ciu-RedSocial/internal/utils"
	"github.com/nachofazah/Ciu-RedSocial/web"
)

const transientIdle = 30 * time.Minute

type Deps struct {
	Config  config.Config
	Backend controllers.Backend
	Store   storage.Store
	Log     *logrus.Logger

	// Zero values mean the production delays.
	ErrorClearDelay    time.Duration
	APIErrorClearDelay time.Duration
	BannerTTL          time.Duration
}

type Server struct {
	App        *fiber.App
	Transients *session.Transients
}

func New(d Deps) (*Server, error) {
	if d.BannerTTL <= 0 {
		d.BannerTTL = notify.DefaultTTL
	}

	var transients *session.Transients
	forms := controllers.RegistrationForms(d.Backend, d.Store, func() *session.Transients { return transients }, d.Log,
		register.WithClearDelays(d.ErrorClearDelay, d.APIErrorClearDelay))
	transients = session.NewTransients(forms, d.BannerTTL, transientIdle)

	view := controllers.NewRenderer(transients, d.Log)
	auth, err := controllers.NewAuthHandler(d.Backend, view, d.Config.LoginPassword)
	if err != nil {
		return nil, err
	}
	aggregator := feed.NewAggregator(d.Backend,
		feed.WithFanoutLimit(d.Config.FeedFanoutLimit),
		feed.WithLogger(d.Log),
	)
	reg := controllers.NewRegisterHandler(transients, view)
	feeds := controllers.NewFeedHandler(d.Backend, aggregator, view)
	posts := controllers.NewPostHandler(d.Backend, utils.NewProfanityFilter(profanityWords(d.Config)), view)
	prefs := controllers.NewPreferencesHandler(transients)

	app := fiber.New(fiber.Config{
		AppName:      "antisocial",
		Immutable:    true,
		Views:        web.NewEngine(),
		ErrorHandler: errorHandler(view),
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: d.Log.Writer()}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use("/static", filesystem.New(filesystem.Config{Root: web.Static()}))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", metrics.Handler())
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.RequestDeadline(d.Config.RequestTimeout))
	app.Use(middleware.Visitor(middleware.VisitorConfig{
		Secret: d.Config.VisitorSecret,
		TTL:    d.Config.VisitorTTL,
		Secure: d.Config.Production(),
		Log:    d.Log,
	}))
	app.Use(middleware.InjectSession(d.Store, transients, d.Log))

	routes.SetupAuth(app, auth, reg)
	routes.SetupRoutesFeed(app, feeds)
	routes.SetupRoutesPost(app, posts)
	routes.SetupRoutesPreferences(app, prefs)
	routes.SetupRoutesAPI(app, feeds, reg, prefs)

	app.Use(view.NotFoundPage)

	return &Server{App: app, Transients: transients}, nil
}

func profanityWords(cfg config.Config) []string {
	words := append([]string{}, utils.DefaultBannedWords...)
	return append(words, cfg.ProfanityWords...)
}

func errorHandler(view *controllers.Renderer) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Something went wrong."
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			view.Log.WithError(err).WithField("path", c.Path()).Error("request failed")
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(dto.ErrorResponse{Message: msg})
		}
		if code == fiber.StatusNotFound {
			if rerr := view.NotFound(c, ""); rerr == nil {
				return nil
			}
		} else if rerr := view.Error(c, code, msg); rerr == nil {
			return nil
		}
		return c.Status(code).SendString(msg)
	}
}
