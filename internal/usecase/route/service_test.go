package route

import (
	"context"
	"os"
	"testing"
	"time"

	domainRoute "trip-expense-tracker/internal/domain/route"
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

func (r *fakeRouteRepo) GetByUser(_ context.Context, userID uuid.UUID) ([]*domainRoute.Route, error) {
	var result []*domainRoute.Route
	for _, route := range r.routes {
		if route.UserID == userID {
			copied := *route
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeRouteRepo) Update(_ context.Context, route *domainRoute.Route) error {
	if _, ok := r.routes[route.ID]; !ok {
		return domainRoute.ErrRouteNotFound
	}
	copied := *route
	r.routes[route.ID] = &copied
	return nil
}

func (r *fakeRouteRepo) Delete(_ context.Context, routeID uuid.UUID) error {
	if _, ok := r.routes[routeID]; !ok {
		return domainRoute.ErrRouteNotFound
	}
	delete(r.routes, routeID)
	return nil
}

func seedRoute(t *testing.T, repo *fakeRouteRepo, userID uuid.UUID) *domainRoute.Route {
	t.Helper()

	route := &domainRoute.Route{
		UserID:      userID,
		Name:        "Office commute",
		Origin:      "Lyon",
		Destination: "Grenoble",
		DistanceKM:  110.5,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), route))
	return route
}

func TestCreateRoute(t *testing.T) {
	repo := newFakeRouteRepo()
	svc := NewService(repo)
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, &CreateRouteRequest{
		Name:        "Office commute",
		Origin:      "Lyon",
		Destination: "Grenoble",
		DistanceKM:  110.5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Lyon", resp.Origin)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, stored.UserID)
}

func TestCreateRoute_Invalid(t *testing.T) {
	svc := NewService(newFakeRouteRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &CreateRouteRequest{
		Name:        "No distance",
		Origin:      "Lyon",
		Destination: "Grenoble",
		DistanceKM:  0,
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGetRoute_Ownership(t *testing.T) {
	repo := newFakeRouteRepo()
	svc := NewService(repo)
	owner := uuid.New()
	route := seedRoute(t, repo, owner)

	resp, err := svc.GetByID(context.Background(), owner, route.ID)
	require.NoError(t, err)
	assert.Equal(t, route.ID, resp.ID)

	// Another user's route reads as forbidden, an unknown ID as not found.
	_, err = svc.GetByID(context.Background(), uuid.New(), route.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	_, err = svc.GetByID(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrRouteNotFound)
}

func TestListRoutes_ScopedToUser(t *testing.T) {
	repo := newFakeRouteRepo()
	svc := NewService(repo)
	owner := uuid.New()
	seedRoute(t, repo, owner)
	seedRoute(t, repo, owner)
	seedRoute(t, repo, uuid.New())

	routes, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}

func TestUpdateRoute(t *testing.T) {
	repo := newFakeRouteRepo()
	svc := NewService(repo)
	owner := uuid.New()
	route := seedRoute(t, repo, owner)

	newName := "Weekend trip"
	newDistance := 95.0
	resp, err := svc.Update(context.Background(), owner, route.ID, &UpdateRouteRequest{
		Name:       &newName,
		DistanceKM: &newDistance,
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekend trip", resp.Name)
	assert.Equal(t, 95.0, resp.DistanceKM)
	assert.Equal(t, "Lyon", resp.Origin)

	_, err = svc.Update(context.Background(), uuid.New(), route.ID, &UpdateRouteRequest{Name: &newName})
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)
}

func TestDeleteRoute(t *testing.T) {
	repo := newFakeRouteRepo()
	svc := NewService(repo)
	owner := uuid.New()
	route := seedRoute(t, repo, owner)

	err := svc.Delete(context.Background(), uuid.New(), route.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	require.NoError(t, svc.Delete(context.Background(), owner, route.ID))

	_, err = svc.GetByID(context.Background(), owner, route.ID)
	assert.ErrorIs(t, err, appErrors.ErrRouteNotFound)
}
