package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	dbadapter "github.com/Sp4ce14/ProjectManagerApp/internal/adapter/db"
	httpadapter "github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/handlers"
	httpmiddleware "github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/middleware"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/storage"
	appservice "github.com/Sp4ce14/ProjectManagerApp/internal/app/service"
	"github.com/Sp4ce14/ProjectManagerApp/internal/config"
	"github.com/Sp4ce14/ProjectManagerApp/pkg/logging"
	"github.com/Sp4ce14/ProjectManagerApp/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.NewLogger(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	// Stored images stay resolvable under /images for the lifetime of the file.
	r.Static("/images", cfg.ImageDir)

	projectRepository := dbadapter.NewProjectRepository(db)
	clientRepository := dbadapter.NewClientRepository(db)
	projectService := appservice.NewProjectService(projectRepository)
	clientService := appservice.NewClientService(clientRepository)
	imageStore := storage.NewDiskImageStore(cfg.ImageDir)

	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService, imageStore, cfg.PublicBaseURL)
	clientHandler := handlers.NewClientHandler(clientService)
	httpadapter.RegisterRoutes(r, healthHandler, projectHandler, clientHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	// The SPA is served from another origin during development.
	handler := cors.AllowAll().Handler(r)

	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
