package recommendations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recommendation-backend/internal/customers"
	"recommendation-backend/internal/llm"
	"recommendation-backend/internal/shared/server/respond"
	"recommendation-backend/internal/transactions"
)

// Handler wires HTTP handlers to the pipeline service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze/by_date", h.analyzeByDate)
	rg.POST("/analyze_recommendable_transactions/by_date", h.classifyByDate)
	rg.GET("/analyze_customer_product", h.rankCustomerProducts)
}

type analyzeRequest struct {
	Date string `json:"date"`
}

func (h *Handler) analyzeByDate(c *gin.Context) {
	var req analyzeRequest
	_ = c.ShouldBindJSON(&req)
	if req.Date == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing 'date' in request body", nil)
		return
	}
	c.Set("txnDate", req.Date)

	outcome, err := h.Svc.PickByDate(c.Request.Context(), req.Date)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}
	if outcome.Report != nil {
		respond.OK(c, outcome.Report)
		return
	}
	respond.OK(c, outcome.Picks)
}

func (h *Handler) classifyByDate(c *gin.Context) {
	var req analyzeRequest
	_ = c.ShouldBindJSON(&req)
	if req.Date == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing 'date' in request body", nil)
		return
	}
	c.Set("txnDate", req.Date)

	outcome, err := h.Svc.ClassifyByDate(c.Request.Context(), req.Date)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}
	if outcome.Report != nil {
		respond.OK(c, outcome.Report)
		return
	}
	respond.OK(c, gin.H{"result": outcome.Valid})
}

func (h *Handler) rankCustomerProducts(c *gin.Context) {
	customerID := c.Query("customer_id")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if customerID == "" || startDate == "" || endDate == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "customer_id, start_date and end_date query parameters are required", nil)
		return
	}
	c.Set("customerId", customerID)

	startDay, err := transactions.ParseDate(startDate)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "start_date must be in M/D/Y format", nil)
		return
	}
	endDay, err := transactions.ParseDate(endDate)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "end_date must be in M/D/Y format", nil)
		return
	}
	since, _ := transactions.DayWindow(startDay)
	_, until := transactions.DayWindow(endDay)

	ranked, err := h.Svc.RankProductsForCustomer(c.Request.Context(), customerID, since, until)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}
	respond.OK(c, gin.H{"result": ranked})
}

func (h *Handler) respondPipelineError(c *gin.Context, err error) {
	var malformed *MalformedResponseError
	var provider *llm.ProviderError
	switch {
	case errors.Is(err, ErrInvalidDate):
		respond.Error(c, http.StatusBadRequest, "validation_error", "date must be in M/D/Y format", nil)
	case errors.Is(err, customers.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Customer not found", nil)
	case errors.Is(err, ErrNoSegment):
		respond.Error(c, http.StatusNotFound, "not_found", "Segment ID not found for customer", nil)
	case errors.As(err, &malformed):
		respond.Error(c, http.StatusBadGateway, "malformed_response", "Failed to parse LLM response as JSON.", gin.H{
			"raw_response": malformed.Raw,
		})
	case errors.As(err, &provider):
		respond.Error(c, http.StatusBadGateway, "provider_error", "LLM API call failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
	}
}
