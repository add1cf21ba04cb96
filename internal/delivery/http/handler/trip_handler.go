package handler

import (
	"net/http"

	"trip-expense-tracker/internal/usecase/trip"
	"trip-expense-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TripHandler struct {
	service *trip.Service
}

func NewTripHandler(service *trip.Service) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) RegisterRoutes(router *gin.RouterGroup) {
	trips := router.Group("/trips")
	{
		trips.POST("", h.Create)
		trips.GET("", h.List)
		trips.GET("/:trip_id", h.Get)
		trips.PUT("/:trip_id", h.Update)
		trips.DELETE("/:trip_id", h.Delete)
	}
}

func (h *TripHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req trip.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Origin = utils.SanitizeString(req.Origin)
	req.Destination = utils.SanitizeString(req.Destination)
	if req.Notes != nil {
		sanitized := utils.SanitizeText(*req.Notes)
		req.Notes = &sanitized
	}

	response, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", response)
}

func (h *TripHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req trip.ListTripsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	response, err := h.service.List(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", response)
}

func (h *TripHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	response, err := h.service.GetByID(c.Request.Context(), userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", response)
}

func (h *TripHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req trip.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Origin != nil {
		sanitized := utils.SanitizeString(*req.Origin)
		req.Origin = &sanitized
	}
	if req.Destination != nil {
		sanitized := utils.SanitizeString(*req.Destination)
		req.Destination = &sanitized
	}
	if req.Notes != nil {
		sanitized := utils.SanitizeText(*req.Notes)
		req.Notes = &sanitized
	}

	response, err := h.service.Update(c.Request.Context(), userID, tripID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", response)
}

func (h *TripHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, tripID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}
