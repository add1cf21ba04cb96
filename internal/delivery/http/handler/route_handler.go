package handler

import (
	"net/http"

	"trip-expense-tracker/internal/usecase/route"
	"trip-expense-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RouteHandler struct {
	service *route.Service
}

func NewRouteHandler(service *route.Service) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) RegisterRoutes(router *gin.RouterGroup) {
	routes := router.Group("/routes")
	{
		routes.POST("", h.Create)
		routes.GET("", h.List)
		routes.GET("/:route_id", h.Get)
		routes.PUT("/:route_id", h.Update)
		routes.DELETE("/:route_id", h.Delete)
	}
}

func (h *RouteHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req route.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	req.Origin = utils.SanitizeString(req.Origin)
	req.Destination = utils.SanitizeString(req.Destination)

	response, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", response)
}

func (h *RouteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	responses, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", responses)
}

func (h *RouteHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid route ID")
		return
	}

	response, err := h.service.GetByID(c.Request.Context(), userID, routeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", response)
}

func (h *RouteHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid route ID")
		return
	}

	var req route.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}
	if req.Origin != nil {
		sanitized := utils.SanitizeString(*req.Origin)
		req.Origin = &sanitized
	}
	if req.Destination != nil {
		sanitized := utils.SanitizeString(*req.Destination)
		req.Destination = &sanitized
	}

	response, err := h.service.Update(c.Request.Context(), userID, routeID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", response)
}

func (h *RouteHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid route ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, routeID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Route deleted successfully", nil)
}
