// Package api wires the HTTP surface of the Dwellist web app.
package api

import (
	"fmt"
	"log/slog"

	"github.com/dwellist/dwellist-backend/internal/api/handlers"
	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/auth"
	"github.com/dwellist/dwellist-backend/internal/config"
	"github.com/dwellist/dwellist-backend/internal/logger"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/payment"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/services"
	"github.com/dwellist/dwellist-backend/internal/storage"
	"github.com/dwellist/dwellist-backend/internal/web"
	ws "github.com/dwellist/dwellist-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *slog.Logger
	Security *logger.SecurityLogger

	// Provider may be overridden in tests; nil selects the real Google
	// provider from Config.
	Provider auth.IdentityProvider

	// Hub must be running before the router serves traffic.
	Hub *ws.Hub
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) (*echo.Echo, error) {
	// The mailbox service sends notifications through the hub; without one
	// the nil-notifier guard never trips and sends would hit a nil channel.
	if cfg.Hub == nil {
		return nil, fmt.Errorf("router requires a running websocket hub")
	}

	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}
	e.Renderer = renderer

	images, err := storage.NewLocalStorage(cfg.Config.ImageStoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init image storage: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	propertyRepo := repository.NewPropertyRepository(cfg.DB)
	linkRepo := repository.NewLinkRepository(cfg.DB)
	mailboxRepo := repository.NewMailboxRepository(cfg.DB)
	applicationRepo := repository.NewApplicationRepository(cfg.DB)

	// Services
	mailboxService := services.NewMailboxService(mailboxRepo, userRepo, linkRepo, cfg.Hub)
	applicationService := services.NewApplicationService(applicationRepo, propertyRepo)
	mailer := services.NewMailer(services.MailerConfig{
		Host:     cfg.Config.SMTPHost,
		Port:     cfg.Config.SMTPPort,
		Username: cfg.Config.SMTPUsername,
		Password: cfg.Config.SMTPPassword,
		Inbox:    cfg.Config.ContactInbox,
	})
	payments := payment.NewClient(cfg.Config.PaymentAPIURL, cfg.Config.PaymentAPIKey, cfg.Config.PaymentTimeout, cfg.Logger)

	provider := cfg.Provider
	if provider == nil {
		provider = auth.NewGoogleProvider(
			cfg.Config.GoogleClientID,
			cfg.Config.GoogleClientSecret,
			cfg.Config.GoogleRedirectURL,
		)
	}
	sessions := auth.NewSessionManager(
		cfg.Config.SessionSecret,
		cfg.Config.SessionTTL,
		userRepo,
		cfg.Config.AppEnv == "production",
	)

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Config.ImageStoragePath)
	pagesHandler := handlers.NewPagesHandler(propertyRepo, applicationService, mailer, cfg.Logger)
	authHandler := handlers.NewAuthHandler(provider, sessions, userRepo, cfg.Security, cfg.Logger)
	dashboardHandler := handlers.NewDashboardHandler(userRepo, linkRepo, cfg.Logger)
	profileHandler := handlers.NewProfileHandler(userRepo, cfg.Logger)
	mailboxHandler := handlers.NewMailboxHandler(mailboxService, linkRepo, cfg.Logger)
	propertyHandler := handlers.NewPropertyHandler(propertyRepo, images, cfg.Security, cfg.Logger)
	applicationHandler := handlers.NewApplicationHandler(applicationService, cfg.Logger)
	paymentHandler := handlers.NewPaymentHandler(userRepo, linkRepo, payments, cfg.Security, cfg.Logger)
	wsHandler := handlers.NewWebsocketHandler(cfg.Hub, ws.NewSecureUpgrader(cfg.Config.AllowedOrigins, cfg.Logger), cfg.Logger)

	// Middleware, outermost first
	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.SecureCORS(cfg.Config.AllowedOrigins, cfg.Config.AppEnv))
	e.Use(middleware.RateLimiter(cfg.Config.RateLimitRequests, cfg.Config.RateLimitBurst, cfg.Logger))
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(middleware.LoadPrincipal(sessions, cfg.Logger))

	// Health
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// Public pages
	e.GET("/", pagesHandler.Home)
	e.GET("/login", pagesHandler.Login)
	e.GET("/resident-login", pagesHandler.ResidentLogin)
	e.GET("/landlord-login", pagesHandler.LandlordLogin)
	e.GET("/properties", pagesHandler.ListProperties)
	e.GET("/properties/:id/image", propertyHandler.Image)
	e.POST("/send-email", pagesHandler.SendEmail)
	e.GET("/rental-application", pagesHandler.RentalApplicationForm)
	e.POST("/rental-application", pagesHandler.SubmitRentalApplication)

	// Auth
	e.GET("/auth/google", authHandler.GoogleLogin)
	e.GET("/auth/google/callback", authHandler.GoogleCallback)
	e.GET("/logout", authHandler.Logout)

	// Live mailbox notifications
	e.GET("/ws", wsHandler.Serve, middleware.RequireAuthenticated())

	// Tenant dashboard
	tenant := e.Group("/tenant-dashboard", middleware.RequireRole(models.RoleTenant, cfg.Logger))
	tenant.GET("", dashboardHandler.Tenant)
	tenant.GET("/profile", profileHandler.Show)
	tenant.POST("/profile", profileHandler.Update)
	tenant.GET("/mailbox", mailboxHandler.Inbox)
	tenant.GET("/mailbox/compose", mailboxHandler.Compose)
	tenant.POST("/mailbox/compose", mailboxHandler.Send)
	tenant.GET("/applications", applicationHandler.TenantList)
	tenant.GET("/pay-rent", paymentHandler.Page)
	tenant.POST("/pay-rent", paymentHandler.Charge)

	// Landlord dashboard
	landlord := e.Group("/landlord-dashboard", middleware.RequireRole(models.RoleLandlord, cfg.Logger))
	landlord.GET("", dashboardHandler.Landlord)
	landlord.GET("/profile", profileHandler.Show)
	landlord.POST("/profile", profileHandler.Update)
	landlord.GET("/mailbox", mailboxHandler.Inbox)
	landlord.GET("/mailbox/compose", mailboxHandler.Compose)
	landlord.POST("/mailbox/compose", mailboxHandler.Send)
	landlord.GET("/properties", propertyHandler.List)
	landlord.POST("/properties", propertyHandler.Create)
	landlord.GET("/properties/:id/image", propertyHandler.Image)
	landlord.GET("/applications", applicationHandler.LandlordList)
	landlord.POST("/applications/:id/decide", applicationHandler.Decide)
	landlord.POST("/tenants", dashboardHandler.AddTenant)

	return e, nil
}
