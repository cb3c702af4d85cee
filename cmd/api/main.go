package main

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Andriyshkoy/BurNote/internal/domain/policy"
	"github.com/Andriyshkoy/BurNote/internal/domain/sqlite"
	"github.com/Andriyshkoy/BurNote/internal/domain/sqlite/repository"
	"github.com/Andriyshkoy/BurNote/internal/http/handler"
	"github.com/Andriyshkoy/BurNote/internal/service"
	"github.com/Andriyshkoy/BurNote/internal/utils/uid"
)

const envVarsPrefix = "/burnote/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	uid.Init(1)

	// Init SQLite
	db, err := sqlite.Init(envOr("DATABASE_PATH", "./burnote.db"))
	if err != nil {
		panic(err)
	}

	noteRepo := repository.NewNoteRepository(db)
	notePolicy := policy.NewNotePolicy()
	noteService := service.NewNoteService(noteRepo, notePolicy, validate,
		envOr("DOMAIN", "http://localhost:7070"))
	noteRoutes := handler.NewNoteDefault(noteService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Notes
	e.POST("/api/v1/notes/create", noteRoutes.CreateNote)
	e.POST("/api/v1/notes", noteRoutes.AccessNote)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + envOr("PORT", "7070")); err != nil {
		panic(err)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		if enverr := os.Setenv(key, value); enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
