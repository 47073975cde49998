package catalog

import (
	"context"
	"testing"
	"time"

	"doctorsportal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockServiceRepo) GetNames(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

var catalogFixture = []models.Service{
	{Name: "Teeth Orthodontics", Slots: []string{"8:00 AM", "9:00 AM"}, Price: 40},
	{Name: "Cavity Protection", Slots: []string{"10:00 AM"}, Price: 25},
}

func newCachedService(t *testing.T, repo *mockServiceRepo) (*DefaultCatalogService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &DefaultCatalogService{Repo: repo, Cache: rdb, TTL: time.Minute}, mr
}

func TestListServices_CachesRepositoryResult(t *testing.T) {
	ctx := context.Background()
	repo := &mockServiceRepo{}
	repo.On("GetAll", mock.Anything).Return(catalogFixture, nil).Once()
	svc, mr := newCachedService(t, repo)

	first, err := svc.ListServices(ctx, false)
	require.NoError(t, err)
	second, err := svc.ListServices(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, catalogFixture, first)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(fullCacheKey))
	assert.Greater(t, mr.TTL(fullCacheKey), time.Duration(0))
	repo.AssertNumberOfCalls(t, "GetAll", 1)
}

func TestListServices_NamesUseSeparateKey(t *testing.T) {
	ctx := context.Background()
	repo := &mockServiceRepo{}
	names := []models.Service{{Name: "Teeth Orthodontics"}, {Name: "Cavity Protection"}}
	repo.On("GetNames", mock.Anything).Return(names, nil).Once()
	svc, mr := newCachedService(t, repo)

	got, err := svc.ListServices(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, names, got)
	assert.True(t, mr.Exists(namesCacheKey))
	assert.False(t, mr.Exists(fullCacheKey))
}

func TestListServices_CorruptEntryFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := &mockServiceRepo{}
	repo.On("GetAll", mock.Anything).Return(catalogFixture, nil)
	svc, mr := newCachedService(t, repo)
	require.NoError(t, mr.Set(fullCacheKey, "{not json"))

	got, err := svc.ListServices(ctx, false)

	require.NoError(t, err)
	assert.Equal(t, catalogFixture, got)
}

func TestListServices_RedisDownFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := &mockServiceRepo{}
	repo.On("GetAll", mock.Anything).Return(catalogFixture, nil)
	svc, mr := newCachedService(t, repo)
	mr.Close()

	got, err := svc.ListServices(ctx, false)

	require.NoError(t, err)
	assert.Equal(t, catalogFixture, got)
}

func TestListServices_NoCache(t *testing.T) {
	repo := &mockServiceRepo{}
	repo.On("GetAll", mock.Anything).Return(catalogFixture, nil).Twice()
	svc := &DefaultCatalogService{Repo: repo}

	for i := 0; i < 2; i++ {
		got, err := svc.ListServices(context.Background(), false)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
	repo.AssertExpectations(t)
}
