package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recommendation-backend/internal/recommendations"
	"recommendation-backend/internal/shared/config"
	"recommendation-backend/internal/shared/server/middleware"
	"recommendation-backend/internal/shared/server/respond"
	"recommendation-backend/internal/transactions"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config                 config.Config
	TransactionsHandler    *transactions.Handler
	RecommendationsHandler *recommendations.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	txns := api.Group("/transactions")
	deps.TransactionsHandler.RegisterRoutes(txns)
	deps.RecommendationsHandler.RegisterRoutes(txns)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
