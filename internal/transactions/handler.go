package transactions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recommendation-backend/internal/shared/server/respond"
	"recommendation-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the transactions repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches transaction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fetch/by_date", h.fetchByDate)
}

func (h *Handler) fetchByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing 'date' query parameter", nil)
		return
	}
	c.Set("txnDate", dateStr)

	day, err := ParseDate(dateStr)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "date must be in M/D/Y format", nil)
		return
	}

	telemetry.Info("transactions.fetch", map[string]any{"date": dateStr})
	txs, err := h.Repo.ListByDate(c.Request.Context(), day)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "store_error", "failed to fetch transactions", nil)
		return
	}
	if txs == nil {
		txs = []Transaction{}
	}

	respond.OK(c, gin.H{"transactions": txs, "count": len(txs)})
}
