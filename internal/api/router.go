package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tripnest/tourism-platform/docs"
	"github.com/tripnest/tourism-platform/internal/api/handler"
	"github.com/tripnest/tourism-platform/internal/api/middleware"
	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
	"github.com/tripnest/tourism-platform/internal/core/service"
	mongostore "github.com/tripnest/tourism-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/tripnest/tourism-platform/internal/infrastructure/db/redis"
	"github.com/tripnest/tourism-platform/internal/pkg/config"
	"github.com/tripnest/tourism-platform/internal/pkg/password"
)

const serviceName = "tourism-api"

// Repositories groups the Mongo-backed stores so main can bootstrap their
// indexes before serving.
type Repositories struct {
	Credentials []*mongostore.CredentialStore
	Tags        *mongostore.TagRepository
	Categories  *mongostore.CategoryRepository
	Activities  *mongostore.ActivityRepository
	Itineraries *mongostore.ItineraryRepository
}

// NewRepositories builds one credential store per role plus the catalog
// repositories.
func NewRepositories(db *mongo.Database) (*Repositories, error) {
	repos := &Repositories{
		Tags:        mongostore.NewTagRepository(db),
		Categories:  mongostore.NewCategoryRepository(db),
		Activities:  mongostore.NewActivityRepository(db),
		Itineraries: mongostore.NewItineraryRepository(db),
	}
	for _, role := range domain.RolePriority {
		store, err := mongostore.NewCredentialStore(db, role)
		if err != nil {
			return nil, err
		}
		repos.Credentials = append(repos.Credentials, store)
	}
	return repos, nil
}

// variants pairs each credential store with its hashing scheme: bcrypt for
// the public roles, Argon2id for staff.
func (r *Repositories) variants() []service.Variant {
	bcrypt := password.NewBcrypt(0)
	argon := password.NewArgon2id(nil)

	out := make([]service.Variant, 0, len(r.Credentials))
	for _, store := range r.Credentials {
		var hasher ports.PasswordHasher = bcrypt
		if store.Role().Identifier() == domain.IdentifierUsername {
			hasher = argon
		}
		out = append(out, service.Variant{Store: store, Hasher: hasher})
	}
	return out
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, repos *Repositories, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("tourism"))

	// --- Dependencies ---
	resolver, err := service.NewIdentityResolver(repos.variants()...)
	if err != nil {
		return nil, fmt.Errorf("identity resolver: %w", err)
	}
	sessions := service.NewJWTSessionIssuer(cfg.JWTSecret, cfg.Session.TTL)
	denylist := redisstore.NewDenylist(rdb)

	authService := service.NewAuthService(resolver, sessions, denylist, log)
	searchService := service.NewSearchService(repos.Tags, repos.Categories, repos.Activities, repos.Itineraries, log)
	catalogService := service.NewCatalogService(repos.Tags, repos.Categories, repos.Activities, repos.Itineraries, log)

	authHandler := handler.NewAuthHandler(authService, handler.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	})
	searchHandler := handler.NewSearchHandler(searchService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	auth := middleware.Auth(sessions, denylist, cfg.Session.CookieName)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login, loginLimiter.ByIP())
	e.POST("/sign-up/:role", authHandler.Signup)
	e.GET("/logout", authHandler.Logout)

	admin := e.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/accounts/:role", authHandler.CreateStaff)

	// --- Search and catalog ---
	e.GET("/search-activities", searchHandler.SearchActivities)
	e.GET("/search-itineraries", searchHandler.SearchItineraries)
	e.GET("/activities", searchHandler.ListActivities)
	e.GET("/itineraries", searchHandler.ListItineraries)
	e.GET("/tags", catalogHandler.ListTags)
	e.GET("/categories", catalogHandler.ListCategories)

	e.POST("/activities", catalogHandler.CreateActivity, auth, middleware.RBAC(domain.RoleAdvertiser))
	e.POST("/itineraries", catalogHandler.CreateItinerary, auth, middleware.RBAC(domain.RoleTourGuide))
	e.POST("/tags", catalogHandler.CreateTag, auth, middleware.RBAC(domain.RoleAdmin))
	e.POST("/categories", catalogHandler.CreateCategory, auth, middleware.RBAC(domain.RoleAdmin))
	e.GET("/advertisers/me/activities", searchHandler.MyActivities, auth, middleware.RBAC(domain.RoleAdvertiser))
	e.GET("/tour-guides/me/itineraries", searchHandler.MyItineraries, auth, middleware.RBAC(domain.RoleTourGuide))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(serviceName)
	readinessHandler := handler.NewReadinessHandler(map[string]handler.DependencyCheck{
		"mongodb": handler.MongoCheck(db),
		"redis":   handler.RedisCheck(rdb),
	})

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	return e, nil
}
