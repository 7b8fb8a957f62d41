package routes

import (
	"fmt"
	"time"

	"gamejam-portal-backend/internal/api/handlers"
	"gamejam-portal-backend/internal/api/middleware"
	"gamejam-portal-backend/internal/auth"
	"gamejam-portal-backend/internal/config"
	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/mailer"
	"gamejam-portal-backend/internal/ratelimit"
	"gamejam-portal-backend/internal/repository"
	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the process-wide collaborators built in main
type Dependencies struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
	// Redis is nil when rate limiting is disabled
	Redis *redis.Client
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()
	jar := cookies.NewJar(cfg.CookieSecure, cfg.CookieDomain)

	var loginLimiter, resetLimiter ratelimit.Limiter = ratelimit.Noop{}, ratelimit.Noop{}
	if deps.Redis != nil {
		loginLimiter = ratelimit.NewRedisLimiter(deps.Redis, "rl:login", cfg.RateLimitLoginPerMinute, time.Minute)
		resetLimiter = ratelimit.NewRedisLimiter(deps.Redis, "rl:reset", cfg.RateLimitResetPerHour, time.Hour)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(deps.DB)
	teamRepo := repository.NewTeamRepository(deps.DB)
	tokenRepo := repository.NewPasswordResetTokenRepository(deps.DB)
	applicationRepo := repository.NewApplicationRepository(deps.DB)
	messageRepo := repository.NewMessageRepository(deps.DB)
	submissionRepo := repository.NewSubmissionRepository(deps.DB)
	announcementRepo := repository.NewAnnouncementRepository(deps.DB)

	// Initialize services
	inviteService := service.NewInviteService(tokenRepo, cfg.AppBaseURL, time.Duration(cfg.InviteTokenTTLHours)*time.Hour)
	rosterService := service.NewRosterService(userRepo, teamRepo, inviteService, validator, cfg.TeamMaxMembers)
	passwordService := service.NewPasswordService(userRepo, tokenRepo, inviteService, deps.Mailer, resetLimiter)
	applicationService := service.NewApplicationService(applicationRepo, userRepo, deps.Mailer, validator, cfg.AppBaseURL)
	adminTeamService := service.NewAdminTeamService(teamRepo, userRepo, cfg.TeamMaxMembers)
	messageService := service.NewMessageService(messageRepo, userRepo, validator)
	submissionService := service.NewSubmissionService(submissionRepo, userRepo, validator)
	announcementService := service.NewAnnouncementService(announcementRepo, validator)

	authConfig, err := auth.LoadAuthConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig, userRepo, loginLimiter)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, jar)
	authMiddleware := auth.NewAuthMiddleware(authService, jar)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	teamHandler := handlers.NewTeamHandler(rosterService, jar)
	passwordHandler := handlers.NewPasswordHandler(passwordService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	adminTeamHandler := handlers.NewAdminTeamHandler(adminTeamService)
	messageHandler := handlers.NewMessageHandler(messageService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/forgot-password", passwordHandler.ForgotPassword)
		authGroup.POST("/reset-password", passwordHandler.ResetPassword)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	api.POST("/applications", applicationHandler.Submit)
	api.GET("/announcements", announcementHandler.List)

	// The roster works before login too; the profile cookie identifies the caller then
	team := api.Group("/team", authMiddleware.OptionalAuth())
	{
		team.GET("", teamHandler.GetTeam)
		team.PATCH("", teamHandler.PatchTeam)
		team.POST("", teamHandler.AddMember)
		team.DELETE("", teamHandler.RemoveMember)
	}

	messages := api.Group("/messages", authMiddleware.RequireAuth())
	{
		messages.GET("/inbox", messageHandler.Inbox)
		messages.GET("/outbox", messageHandler.Outbox)
		messages.GET("/unread-count", messageHandler.UnreadCount)
		messages.POST("", messageHandler.Send)
		messages.POST("/:id/read", messageHandler.MarkRead)
		messages.DELETE("/:id", messageHandler.Delete)
	}

	submissions := api.Group("/submissions", authMiddleware.RequireAuth())
	{
		submissions.GET("/mine", submissionHandler.GetMine)
		submissions.PUT("/mine", submissionHandler.PutMine)
	}

	admin := api.Group("/admin", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		applications := admin.Group("/applications")
		{
			applications.GET("", applicationHandler.List)
			applications.GET("/:id", applicationHandler.Get)
			applications.POST("/:id/approve", applicationHandler.Approve)
			applications.POST("/:id/reject", applicationHandler.Reject)
		}

		teams := admin.Group("/teams")
		{
			teams.GET("", adminTeamHandler.ListTeams)
			teams.GET("/:id", adminTeamHandler.GetTeam)
			teams.POST("/:id/members", adminTeamHandler.MatchMember)
			teams.DELETE("/:id", adminTeamHandler.DeleteTeam)
		}

		admin.POST("/messages/broadcast", messageHandler.Broadcast)

		adminSubmissions := admin.Group("/submissions")
		{
			adminSubmissions.GET("", submissionHandler.List)
			adminSubmissions.POST("/:id/review", submissionHandler.Review)
		}

		announcements := admin.Group("/announcements")
		{
			announcements.POST("", announcementHandler.Create)
			announcements.DELETE("/:id", announcementHandler.Delete)
		}
	}

	return router, nil
}
