package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/learnhub/course-enroll/config"
	"github.com/learnhub/course-enroll/internal/handler"
	"github.com/learnhub/course-enroll/internal/middleware"
	"github.com/learnhub/course-enroll/internal/repository"
	"github.com/learnhub/course-enroll/internal/service"
	"github.com/learnhub/course-enroll/internal/token"
	"github.com/learnhub/course-enroll/pkg/database"
	"github.com/learnhub/course-enroll/pkg/logger"
	http_server "github.com/learnhub/course-enroll/pkg/server/http"

	_ "github.com/learnhub/course-enroll/docs"
)

//	@title			COURSE ENROLL APIs
//	@version		1.0
//	@description	Course enrollment backend Swagger APIs.

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				JWT authorization header
func main() {
	env := config.GetEnv()

	zapLogger := logger.GetLogger(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer zapLogger.Sync()

	// An unreachable database is fatal at startup; requests never retry.
	db := database.NewMongoDB(&env.MongoConfig)
	if err := db.Connect(); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		zap.L().Fatal("Failed to ensure MongoDB indexes", zap.Error(err))
	}
	cancel()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	tokens := token.NewService(
		[]byte(env.JWTConfig.Secret),
		time.Duration(env.JWTConfig.ExpiryHours)*time.Hour,
	)

	authService := service.NewAuthService(userRepo, tokens)
	profileService := service.NewProfileService(userRepo, courseRepo)
	courseService := service.NewCourseService(courseRepo, userRepo)

	srv := http_server.New(env, http_server.Port(strconv.Itoa(env.AppConfig.Port)))
	srv.App.Use(middleware.CorrelationIDMiddleware())
	srv.App.Use(middleware.RequestLogger())

	pathPrefix := env.AppConfig.PathPrefix
	if pathPrefix == "" {
		pathPrefix = "/api"
	}
	handler.RegisterRoutes(
		srv.App,
		pathPrefix,
		middleware.RequireAuth(tokens),
		handler.NewAuthHandler(authService),
		handler.NewProfileHandler(profileService),
		handler.NewCourseHandler(courseService),
	)

	srv.Start()
	zap.L().Info("Server started", zap.Int("port", env.AppConfig.Port))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-interrupt:
		zap.L().Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-srv.Notify():
		zap.L().Error("Server error", zap.Error(err))
	}

	if err := srv.Shutdown(); err != nil {
		zap.L().Error("Server shutdown error", zap.Error(err))
	}
}
