package route

import (
	"context"
	"errors"
	"time"

	domainRoute "trip-expense-tracker/internal/domain/route"
	"trip-expense-tracker/internal/logger"
	appErrors "trip-expense-tracker/pkg/errors"
	"trip-expense-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the frequent-route use cases. Every operation on an
// existing route verifies the caller owns it.
type Service struct {
	routeRepo domainRoute.Repository
}

func NewService(routeRepo domainRoute.Repository) *Service {
	return &Service{routeRepo: routeRepo}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateRouteRequest) (*RouteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	route := &domainRoute.Route{
		UserID:      userID,
		Name:        req.Name,
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceKM:  req.DistanceKM,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	logger.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "route_created"),
	)

	return ToRouteResponse(route), nil
}

func (s *Service) GetByID(ctx context.Context, userID, routeID uuid.UUID) (*RouteResponse, error) {
	route, err := s.getOwned(ctx, userID, routeID)
	if err != nil {
		return nil, err
	}

	return ToRouteResponse(route), nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*RouteResponse, error) {
	routes, err := s.routeRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*RouteResponse, len(routes))
	for i, r := range routes {
		responses[i] = ToRouteResponse(r)
	}

	return responses, nil
}

func (s *Service) Update(ctx context.Context, userID, routeID uuid.UUID, req *UpdateRouteRequest) (*RouteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	route, err := s.getOwned(ctx, userID, routeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.Origin != nil {
		route.Origin = *req.Origin
	}
	if req.Destination != nil {
		route.Destination = *req.Destination
	}
	if req.DistanceKM != nil {
		route.DistanceKM = *req.DistanceKM
	}
	route.UpdatedAt = time.Now()

	if err := s.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}

	logger.Info("Route updated",
		zap.String("route_id", route.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "route_updated"),
	)

	return ToRouteResponse(route), nil
}

func (s *Service) Delete(ctx context.Context, userID, routeID uuid.UUID) error {
	route, err := s.getOwned(ctx, userID, routeID)
	if err != nil {
		return err
	}

	if err := s.routeRepo.Delete(ctx, route.ID); err != nil {
		return err
	}

	logger.Info("Route deleted",
		zap.String("route_id", route.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "route_deleted"),
	)

	return nil
}

func (s *Service) getOwned(ctx context.Context, userID, routeID uuid.UUID) (*domainRoute.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, domainRoute.ErrRouteNotFound) {
			return nil, appErrors.ErrRouteNotFound
		}
		return nil, err
	}

	if route.UserID != userID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	return route, nil
}
