package pkg

import (
	"context"
	"log"
	"os"

	"examhall/internal/allotment"
	"examhall/internal/auth"
	"examhall/internal/config"
	"examhall/internal/duty"
	"examhall/internal/notification"
	"examhall/internal/store"
	"examhall/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(NewLogger),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(auth.NewUserRepository),
	fx.Provide(auth.NewAuthService),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(notification.NewNotificationRepository),
	fx.Provide(notification.NewNotificationService),
	fx.Provide(notification.NewNotificationHandler),
	fx.Provide(notification.NewNotificationScheduler),
	fx.Provide(store.NewRunRepository),
	fx.Provide(allotment.NewHandler),
	fx.Provide(duty.NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(StartNotificationScheduler))

// NewLogger builds the structured logger shared by the allotment and duty
// handlers for diagnostic lines alongside their run responses.
func NewLogger(lc fx.Lifecycle) (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Sync()
		},
	})
	return logger, nil
}

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080" // Default port if not specified in environment
	}
	if port[0] != ':' {
		port = ":" + port
	}
	log.Println("Server running on http://localhost" + port[1:])
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// StartNotificationScheduler starts the notification scheduler using dependency injection.
func StartNotificationScheduler(scheduler *notification.NotificationScheduler, lc fx.Lifecycle) {
	scheduler.StartScheduler(lc)
}

func RegisterRoutes(e *echo.Echo, authHandler *auth.AuthHandler, notificationHandler *notification.NotificationHandler, allotmentHandler *allotment.Handler, dutyHandler *duty.Handler) {
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.POST("/verify-email", authHandler.VerifyEmail)
	e.POST("/reset-password", authHandler.ResetPassword)

	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware)
	protected.Use(middleware.CasbinMiddleware)
	protected.GET("/profile", authHandler.Profile)

	protected.POST("/notifications/schedule", notificationHandler.ScheduleNotification)
	protected.GET("/notifications", notificationHandler.ListNotifications)
	protected.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

	protected.POST("/allotment/run", allotmentHandler.Allot)
	protected.POST("/duty/run", dutyHandler.Assign)
}
