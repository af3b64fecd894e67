package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"recommendation-backend/internal/customers"
	"recommendation-backend/internal/llm"
	"recommendation-backend/internal/llm/openai"
	"recommendation-backend/internal/products"
	"recommendation-backend/internal/recommendations"
	"recommendation-backend/internal/shared/config"
	"recommendation-backend/internal/shared/server"
	"recommendation-backend/internal/shared/storage/db"
	"recommendation-backend/internal/transactions"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	TransactionsRepo transactions.Repo
	CustomersRepo    customers.Repo
	ProductsRepo     products.Repo
	LLM              llm.Client

	RecommendationService  *recommendations.Service
	TransactionsHandler    *transactions.Handler
	RecommendationsHandler *recommendations.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		LLM:    llmClient,
	}

	if sqlDB != nil {
		app.TransactionsRepo = &transactions.PGRepo{DB: sqlDB}
		app.CustomersRepo = &customers.PGRepo{DB: sqlDB}
		app.ProductsRepo = &products.PGRepo{DB: sqlDB}
	} else {
		app.TransactionsRepo = transactions.NewMemoryRepo()
		app.CustomersRepo = customers.NewMemoryRepo()
		app.ProductsRepo = products.NewMemoryRepo()
	}

	app.RecommendationService = &recommendations.Service{
		Transactions: app.TransactionsRepo,
		Customers:    app.CustomersRepo,
		Products:     app.ProductsRepo,
		LLM:          app.LLM,
		Temperature:  cfg.LLMTemperature,
	}
	app.TransactionsHandler = transactions.NewHandler(app.TransactionsRepo)
	app.RecommendationsHandler = recommendations.NewHandler(app.RecommendationService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                 cfg,
		TransactionsHandler:    app.TransactionsHandler,
		RecommendationsHandler: app.RecommendationsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		log.Printf("bootstrap: llm provider %q not configured; using placeholder client", cfg.LLMProvider)
		return llm.PlaceholderClient{}, nil
	}
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder client")
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return openai.NewClient(openai.Config{
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		BaseURL: cfg.LLMBaseURL,
	})
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
