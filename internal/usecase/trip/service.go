package trip

import (
	"context"
	"errors"
	"time"

	domainRoute "trip-expense-tracker/internal/domain/route"
	domainTrip "trip-expense-tracker/internal/domain/trip"
	"trip-expense-tracker/internal/logger"
	appErrors "trip-expense-tracker/pkg/errors"
	"trip-expense-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service implements the trip use cases. Every operation on an existing
// trip verifies the caller owns it; a trip may only reference one of the
// caller's own routes.
type Service struct {
	tripRepo  domainTrip.Repository
	routeRepo domainRoute.Repository
}

func NewService(tripRepo domainTrip.Repository, routeRepo domainRoute.Repository) *Service {
	return &Service{
		tripRepo:  tripRepo,
		routeRepo: routeRepo,
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateTripRequest) (*TripResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.RouteID != nil {
		if err := s.checkRouteOwnership(ctx, userID, *req.RouteID); err != nil {
			return nil, err
		}
	}

	trip := &domainTrip.Trip{
		UserID:      userID,
		RouteID:     req.RouteID,
		Origin:      req.Origin,
		Destination: req.Destination,
		TripDate:    req.TripDate,
		DistanceKM:  req.DistanceKM,
		FuelCost:    req.FuelCost,
		ParkingCost: req.ParkingCost,
		TollCost:    req.TollCost,
		OtherCost:   req.OtherCost,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("total_cost", trip.TotalCost()),
		zap.String("event", "trip_created"),
	)

	return ToTripResponse(trip), nil
}

func (s *Service) GetByID(ctx context.Context, userID, tripID uuid.UUID) (*TripResponse, error) {
	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	return ToTripResponse(trip), nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, req *ListTripsRequest) (*TripListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := domainTrip.Filter{
		From:     req.From,
		To:       req.To,
		RouteID:  req.RouteID,
		Page:     page,
		PageSize: pageSize,
	}

	trips, total, err := s.tripRepo.GetByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*TripResponse, len(trips))
	for i, t := range trips {
		responses[i] = ToTripResponse(t)
	}

	return &TripListResponse{
		Trips:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *Service) Update(ctx context.Context, userID, tripID uuid.UUID, req *UpdateTripRequest) (*TripResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if req.RouteID != nil {
		if err := s.checkRouteOwnership(ctx, userID, *req.RouteID); err != nil {
			return nil, err
		}
		trip.RouteID = req.RouteID
	}
	if req.Origin != nil {
		trip.Origin = *req.Origin
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.TripDate != nil {
		trip.TripDate = *req.TripDate
	}
	if req.DistanceKM != nil {
		trip.DistanceKM = *req.DistanceKM
	}
	if req.FuelCost != nil {
		trip.FuelCost = *req.FuelCost
	}
	if req.ParkingCost != nil {
		trip.ParkingCost = *req.ParkingCost
	}
	if req.TollCost != nil {
		trip.TollCost = *req.TollCost
	}
	if req.OtherCost != nil {
		trip.OtherCost = *req.OtherCost
	}
	if req.Notes != nil {
		trip.Notes = req.Notes
	}
	trip.UpdatedAt = time.Now()

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("Trip updated",
		zap.String("trip_id", trip.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "trip_updated"),
	)

	return ToTripResponse(trip), nil
}

func (s *Service) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if err := s.tripRepo.Delete(ctx, trip.ID); err != nil {
		return err
	}

	logger.Info("Trip deleted",
		zap.String("trip_id", trip.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "trip_deleted"),
	)

	return nil
}

func (s *Service) getOwned(ctx context.Context, userID, tripID uuid.UUID) (*domainTrip.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domainTrip.ErrTripNotFound) {
			return nil, appErrors.ErrTripNotFound
		}
		return nil, err
	}

	if trip.UserID != userID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	return trip, nil
}

func (s *Service) checkRouteOwnership(ctx context.Context, userID, routeID uuid.UUID) error {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, domainRoute.ErrRouteNotFound) {
			return appErrors.ErrRouteNotFound
		}
		return err
	}

	if route.UserID != userID {
		return appErrors.ErrInsufficientPermissions
	}

	return nil
}
