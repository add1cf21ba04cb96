package trip

import (
	"context"
	"os"
	"testing"
	"time"

	domainRoute "trip-expense-tracker/internal/domain/route"
	domainTrip "trip-expense-tracker/internal/domain/trip"
	"trip-expense-tracker/internal/logger"
	appErrors "trip-expense-tracker/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeTripRepo struct {
	trips map[uuid.UUID]*domainTrip.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[uuid.UUID]*domainTrip.Trip)}
}

func (r *fakeTripRepo) Create(_ context.Context, trip *domainTrip.Trip) error {
	trip.ID = uuid.New()
	copied := *trip
	r.trips[trip.ID] = &copied
	return nil
}

func (r *fakeTripRepo) GetByID(_ context.Context, tripID uuid.UUID) (*domainTrip.Trip, error) {
	trip, ok := r.trips[tripID]
	if !ok {
		return nil, domainTrip.ErrTripNotFound
	}
	copied := *trip
	return &copied, nil
}

func (r *fakeTripRepo) GetByUser(_ context.Context, userID uuid.UUID, filter domainTrip.Filter) ([]*domainTrip.Trip, int64, error) {
	var matched []*domainTrip.Trip
	for _, trip := range r.trips {
		if trip.UserID != userID {
			continue
		}
		if filter.From != nil && trip.TripDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && trip.TripDate.After(*filter.To) {
			continue
		}
		if filter.RouteID != nil && (trip.RouteID == nil || *trip.RouteID != *filter.RouteID) {
			continue
		}
		copied := *trip
		matched = append(matched, &copied)
	}

	total := int64(len(matched))
	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= len(matched) {
			return nil, total, nil
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *fakeTripRepo) Update(_ context.Context, trip *domainTrip.Trip) error {
	if _, ok := r.trips[trip.ID]; !ok {
		return domainTrip.ErrTripNotFound
	}
	copied := *trip
	r.trips[trip.ID] = &copied
	return nil
}

func (r *fakeTripRepo) Delete(_ context.Context, tripID uuid.UUID) error {
	if _, ok := r.trips[tripID]; !ok {
		return domainTrip.ErrTripNotFound
	}
	delete(r.trips, tripID)
	return nil
}

func (r *fakeTripRepo) GetSummary(_ context.Context, userID uuid.UUID) (*domainTrip.Summary, error) {
	summary := &domainTrip.Summary{}
	for _, trip := range r.trips {
		if trip.UserID != userID {
			continue
		}
		summary.TripCount++
		summary.TotalDistanceKM += trip.DistanceKM
		summary.TotalFuelCost += trip.FuelCost
		summary.TotalParkingCost += trip.ParkingCost
		summary.TotalTollCost += trip.TollCost
		summary.TotalOtherCost += trip.OtherCost
		summary.TotalCost += trip.TotalCost()
	}
	return summary, nil
}

func (r *fakeTripRepo) GetMonthlyStats(_ context.Context, _ uuid.UUID, _ int) ([]*domainTrip.MonthlyStat, error) {
	return nil, nil
}

func (r *fakeTripRepo) GetTopRoutes(_ context.Context, _ uuid.UUID, _ int) ([]*domainTrip.RouteStat, error) {
	return nil, nil
}

type fakeRouteRepo struct {
	routes map[uuid.UUID]*domainRoute.Route
}

func newFakeRouteRepo() *fakeRouteRepo {
	return &fakeRouteRepo{routes: make(map[uuid.UUID]*domainRoute.Route)}
}

func (r *fakeRouteRepo) Create(_ context.Context, route *domainRoute.Route) error {
	route.ID = uuid.New()
	copied := *route
	r.routes[route.ID] = &copied
	return nil
}

func (r *fakeRouteRepo) GetByID(_ context.Context, routeID uuid.UUID) (*domainRoute.Route, error) {
	route, ok := r.routes[routeID]
	if !ok {
		return nil, domainRoute.ErrRouteNotFound
	}
	copied := *route
	return &copied, nil
}

func (r *fakeRouteRepo) GetByUser(_ context.Context, _ uuid.UUID) ([]*domainRoute.Route, error) {
	return nil, nil
}

func (r *fakeRouteRepo) Update(_ context.Context, _ *domainRoute.Route) error { return nil }

func (r *fakeRouteRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func newTestService() (*Service, *fakeTripRepo, *fakeRouteRepo) {
	tripRepo := newFakeTripRepo()
	routeRepo := newFakeRouteRepo()
	return NewService(tripRepo, routeRepo), tripRepo, routeRepo
}

func createTripRequest() *CreateTripRequest {
	return &CreateTripRequest{
		Origin:      "Lyon",
		Destination: "Grenoble",
		TripDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		DistanceKM:  110.5,
		FuelCost:    18.40,
		ParkingCost: 6.00,
		TollCost:    9.20,
	}
}

func seedTrip(t *testing.T, repo *fakeTripRepo, userID uuid.UUID, date time.Time) *domainTrip.Trip {
	t.Helper()

	trip := &domainTrip.Trip{
		UserID:      userID,
		Origin:      "Lyon",
		Destination: "Grenoble",
		TripDate:    date,
		DistanceKM:  100,
		FuelCost:    15,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), trip))
	return trip
}

func TestCreateTrip(t *testing.T) {
	svc, repo, _ := newTestService()
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, createTripRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.InDelta(t, 33.6, resp.TotalCost, 1e-9)
	assert.Nil(t, resp.RouteID)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, stored.UserID)
}

func TestCreateTrip_RouteOwnership(t *testing.T) {
	svc, _, routeRepo := newTestService()
	userID := uuid.New()

	ownRoute := &domainRoute.Route{UserID: userID, Name: "Commute", Origin: "Lyon", Destination: "Grenoble", DistanceKM: 110.5}
	require.NoError(t, routeRepo.Create(context.Background(), ownRoute))
	foreignRoute := &domainRoute.Route{UserID: uuid.New(), Name: "Other", Origin: "Paris", Destination: "Lille", DistanceKM: 220}
	require.NoError(t, routeRepo.Create(context.Background(), foreignRoute))

	req := createTripRequest()
	req.RouteID = &ownRoute.ID
	resp, err := svc.Create(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, ownRoute.ID, *resp.RouteID)

	// Someone else's route is forbidden, an unknown one is not found.
	req = createTripRequest()
	req.RouteID = &foreignRoute.ID
	_, err = svc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	unknown := uuid.New()
	req = createTripRequest()
	req.RouteID = &unknown
	_, err = svc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, appErrors.ErrRouteNotFound)
}

func TestCreateTrip_Invalid(t *testing.T) {
	svc, _, _ := newTestService()

	req := createTripRequest()
	req.DistanceKM = 0

	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGetTrip_Ownership(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	trip := seedTrip(t, repo, owner, time.Now())

	resp, err := svc.GetByID(context.Background(), owner, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, resp.ID)

	_, err = svc.GetByID(context.Background(), uuid.New(), trip.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	_, err = svc.GetByID(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrTripNotFound)
}

func TestListTrips_PaginationDefaults(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	for i := 0; i < 25; i++ {
		seedTrip(t, repo, owner, time.Now().AddDate(0, 0, -i))
	}

	resp, err := svc.List(context.Background(), owner, &ListTripsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Len(t, resp.Trips, 20)

	resp, err = svc.List(context.Background(), owner, &ListTripsRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Trips, 5)
}

func TestListTrips_DateFilter(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	seedTrip(t, repo, owner, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	seedTrip(t, repo, owner, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	seedTrip(t, repo, owner, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(context.Background(), owner, &ListTripsRequest{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}

func TestUpdateTrip(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	trip := seedTrip(t, repo, owner, time.Now())

	newFuel := 22.5
	notes := "client visit"
	resp, err := svc.Update(context.Background(), owner, trip.ID, &UpdateTripRequest{
		FuelCost: &newFuel,
		Notes:    &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, 22.5, resp.FuelCost)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "client visit", *resp.Notes)
	assert.Equal(t, "Lyon", resp.Origin)

	_, err = svc.Update(context.Background(), uuid.New(), trip.ID, &UpdateTripRequest{FuelCost: &newFuel})
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)
}

func TestDeleteTrip(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	trip := seedTrip(t, repo, owner, time.Now())

	err := svc.Delete(context.Background(), uuid.New(), trip.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	require.NoError(t, svc.Delete(context.Background(), owner, trip.ID))

	_, err = svc.GetByID(context.Background(), owner, trip.ID)
	assert.ErrorIs(t, err, appErrors.ErrTripNotFound)
}
