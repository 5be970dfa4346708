package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/database"
	"github.com/taskhive/taskhive-api/internal/handlers"
	"github.com/taskhive/taskhive-api/internal/middleware"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/services"
)

func main() {
	// Optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if cfg.Server.GinMode == "release" {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	gin.SetMode(cfg.Server.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.WithError(err).Fatal("Failed to create indexes")
	}

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	eventRepo := repository.NewEventRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	authService := services.NewAuthService(userRepo)
	adminService := services.NewAdminService(adminRepo, cfg.Admin.BootstrapSecret)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	eventService := services.NewEventService(eventRepo)
	platformService := services.NewPlatformService(platformRepo)
	statsService := services.NewStatsService(statsRepo, taskRepo, userRepo)
	bootstrapService := services.NewBootstrapService(authService, platformService, userRepo, taskRepo, statsRepo)

	if err := platformService.EnsureDefaults(); err != nil {
		log.WithError(err).Fatal("Failed to seed default platforms")
	}

	authHandler := handlers.NewAuthHandler(authService)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	eventHandler := handlers.NewEventHandler(eventService)
	platformHandler := handlers.NewPlatformHandler(platformService)
	statsHandler := handlers.NewStatsHandler(statsService)
	bootstrapHandler := handlers.NewBootstrapHandler(bootstrapService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.StandardLogger()))

	store, err := newSessionStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to create session store")
	}
	r.Use(sessions.SessionsMany([]string{constants.UserSessionName, constants.AdminSessionName}, store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireUser(userRepo), authHandler.GetCurrentUser)
		}

		me := api.Group("/me")
		me.Use(middleware.RequireUser(userRepo))
		{
			me.PUT("", userHandler.UpdateProfile)
			me.PUT("/password", userHandler.ChangePassword)
			me.PUT("/avatar", userHandler.UpdateAvatar)
		}

		api.GET("/users", middleware.RequireUser(userRepo), userHandler.ListUsers)

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireUser(userRepo))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		platforms := api.Group("/platforms")
		platforms.Use(middleware.RequireUser(userRepo))
		{
			platforms.GET("", platformHandler.ListPlatforms)
			platforms.POST("", platformHandler.AddPlatform)
			platforms.DELETE("/:name", platformHandler.RemovePlatform)
		}

		events := api.Group("/events")
		events.Use(middleware.RequireUser(userRepo))
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/upcoming", eventHandler.ListUpcoming)
		}

		// Seeding is idempotent, so exposing it both ways is harmless.
		bootstrap := api.Group("/bootstrap")
		{
			bootstrap.GET("/seed", bootstrapHandler.Seed)
			bootstrap.POST("/seed", bootstrapHandler.Seed)
		}

		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			{
				adminAuth.POST("/login", adminAuthHandler.Login)
				adminAuth.POST("/logout", adminAuthHandler.Logout)
				adminAuth.GET("/me", middleware.RequireAdmin(adminRepo), adminAuthHandler.GetCurrentAdmin)
			}

			admin.POST("/bootstrap", adminAuthHandler.Bootstrap)

			protected := admin.Group("")
			protected.Use(middleware.RequireAdmin(adminRepo))
			{
				protected.GET("/users", statsHandler.ListUsersWithCounts)
				protected.GET("/tasks", statsHandler.GetRecentTasks)
				protected.DELETE("/tasks/:id", taskHandler.AdminDeleteTask)

				stats := protected.Group("/stats")
				{
					stats.GET("/users", statsHandler.GetUserStats)
					stats.GET("/tasks", statsHandler.GetTaskStats)
					stats.GET("/recent-tasks", statsHandler.GetRecentTasks)
					stats.GET("/top-users", statsHandler.GetTopUsers)
				}

				adminEvents := protected.Group("/events")
				{
					adminEvents.POST("", eventHandler.CreateEvent)
					adminEvents.PUT("/:id", eventHandler.UpdateEvent)
					adminEvents.DELETE("/:id", eventHandler.DeleteEvent)
				}
			}
		}
	}

	addr := cfg.Server.Address()
	log.WithField("addr", addr).Info("Server starting")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("Server exited")
	}
}

// newSessionStore picks Redis when configured, otherwise the signed
// cookie store. Both carry the same cookie options.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	options := sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Server.GinMode == "release",
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.Redis.Host != "" {
		store, err := redisStore.NewStore(10, "tcp", cfg.Redis.Address(), "", "", []byte(cfg.Session.Secret))
		if err != nil {
			return nil, err
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(options)
	return store, nil
}
