package router

import (
	_ "classroom/docs"
	"classroom/packages/common/config"
	"classroom/packages/common/logger"
	Auth "classroom/packages/presentation/api/http/controllers/auth"
	Comment "classroom/packages/presentation/api/http/controllers/comment"
	Docs "classroom/packages/presentation/api/http/controllers/docs"
	Health "classroom/packages/presentation/api/http/controllers/health"
	Post "classroom/packages/presentation/api/http/controllers/post"
	User "classroom/packages/presentation/api/http/controllers/user"
	"classroom/packages/presentation/api/http/middleware"
	"classroom/packages/presentation/api/http/request"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

var log = logger.NewSource("ROUTER", logger.Default)

const rootPath = ""

func initSentry() bool {
	if config.Secret.SentryDSN == "" {
		log.Info("Sentry DSN isn't set, error reporting is disabled", nil)
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.Secret.SentryDSN,
		EnableTracing:    true,
		TracesSampleRate: config.Sentry.TraceSampleRate,
		Debug:            config.Debug.Enabled,
		ServerName:       config.App.ServiceID,
		AttachStacktrace: true,
	}); err != nil {
		log.Panic("Sentry initialization failed", err.Error(), nil)
	}

	return true
}

func Create() *echo.Echo {
	Auth.Init()

	router := echo.New()

	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = handleHttpError
	router.JSONSerializer = codec{}
	router.Binder = codec{}

	cors := echoMiddleware.CORSConfig{
		Skipper:      echoMiddleware.DefaultSkipper,
		AllowOrigins: config.HTTP.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
		},
	}

	router.Use(middleware.SecurityHeaders)
	router.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	router.Use(request.Middleware)
	router.Use(echoMiddleware.Recover())
	router.Use(echoMiddleware.BodyLimit(config.HTTP.BodyLimit))
	router.Use(echoMiddleware.CORSWithConfig(cors))

	if initSentry() {
		router.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	if config.Debug.Enabled {
		router.Use(echoMiddleware.Logger())
	}

	secure := middleware.Secure

	router.GET("/health", Health.Health, middleware.Sensivity(middleware.InsignificantEndpoint))
	router.GET("/saudacao", Health.Greeting, middleware.Sensivity(middleware.InsignificantEndpoint))

	authMiddlewares := []echo.MiddlewareFunc{
		middleware.NoCache,
		middleware.Sensivity(middleware.SensitiveEndpoint),
	}
	if config.HTTP.RateLimiting {
		authMiddlewares = append(authMiddlewares, middleware.Max5reqPerMinute())
	}

	authGroup := router.Group("/auth", authMiddlewares...)

	authGroup.POST("/register", Auth.Register)
	authGroup.POST("/login", Auth.Login)

	router.GET("/me", User.Me, middleware.NoCache, secure)

	postGroup := router.Group("/posts")

	postGroup.GET(rootPath, Post.List)
	postGroup.POST(rootPath, Post.Create, secure)
	postGroup.GET("/search", Post.Search)
	postGroup.GET("/:id", Post.Get)
	postGroup.PUT("/:id", Post.Update, secure)
	postGroup.DELETE("/:id", Post.Delete, secure)
	postGroup.GET("/:id/comments", Comment.List)
	postGroup.POST("/:id/comments", Comment.Create, secure)

	router.DELETE("/comments/:id", Comment.Delete, secure)

	userGroup := router.Group("/users")

	userGroup.GET(rootPath, User.List)
	userGroup.GET("/:id", User.Get)

	router.GET("/export/csv", User.ExportCSV)

	if config.Debug.Enabled {
		log.Info("Debug mode is enabled, API docs are available at /docs/index.html", nil)
		router.GET("/docs/*", Docs.Swagger)
	}

	return router
}
