package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/Zibuza/Reschool-HW-B/bootstrap"
	"github.com/Zibuza/Reschool-HW-B/config"
	"github.com/Zibuza/Reschool-HW-B/database"
	_ "github.com/Zibuza/Reschool-HW-B/docs"
	"github.com/Zibuza/Reschool-HW-B/internal/handlers"
	"github.com/Zibuza/Reschool-HW-B/internal/middleware"
	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/internal/routes"
	"github.com/Zibuza/Reschool-HW-B/internal/storage"
	"github.com/Zibuza/Reschool-HW-B/internal/token"
)

//	@title			Blog API
//	@version		1.0
//	@description	Blogging backend: users, posts with reactions, comments, image upload.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.MustLoad()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo", zap.Error(err))
	}
	defer database.Disconnect(ctx, client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	media, err := storage.NewMinioStore(ctx, cfg.Media)
	if err != nil {
		logger.Fatal("media store", zap.Error(err))
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTTTL)
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(logger))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Auth: &handlers.AuthHandler{
			Users: userRepo, Tokens: tokens, Validate: validate, Log: logger,
		},
		Users: &handlers.UserHandler{
			Users: userRepo, Media: media, Log: logger,
		},
		Posts: &handlers.PostHandler{
			Posts: postRepo, Users: userRepo, Media: media, Log: logger,
		},
		Comments: &handlers.CommentHandler{
			Comments: commentRepo, Posts: postRepo, Log: logger,
		},
		Upload: &handlers.UploadHandler{
			Media: media, Log: logger,
		},
		RequireAuth: middleware.RequireAuth(tokens),
	})

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
