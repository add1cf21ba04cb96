package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trip-expense-tracker/internal/usecase/analytics"
	"trip-expense-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *analytics.Service
}

func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/analytics")
	{
		stats.GET("/summary", h.Summary)
		stats.GET("/monthly", h.Monthly)
		stats.GET("/top-routes", h.TopRoutes)
		stats.GET("/export", h.Export)
	}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	response, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", response)
}

func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid months parameter")
			return
		}
		months = parsed
	}

	responses, err := h.service.MonthlyStats(c.Request.Context(), userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Monthly stats retrieved successfully", responses)
}

func (h *AnalyticsHandler) TopRoutes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	responses, err := h.service.TopRoutes(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Top routes retrieved successfully", responses)
}

// Export streams the caller's trips as a CSV attachment.
func (h *AnalyticsHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("trips-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportCSV(c.Request.Context(), userID, c.Writer); err != nil {
		respondWithError(c, err)
		return
	}
}
