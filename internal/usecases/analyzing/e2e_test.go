package analyzing

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/database"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/repository"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/generating"
)

func newSQLiteStore(t *testing.T) *database.Connection {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "food_delivery.db")
	cfg := config.Database{
		Driver: config.DriverSQLite,
		Path:   path,
		DSN:    "file:" + filepath.ToSlash(path) + "?_pragma=foreign_keys(1)",
	}

	conn, err := database.NewConnection(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ddl, err := database.LoadSchema("")
	require.NoError(t, err)
	require.NoError(t, conn.ApplySchema(ctx, ddl))

	return conn
}

func TestEndToEnd_SmallDataset(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteStore(t)
	clock := func() time.Time { return referenceTime }

	populator := generating.NewService(
		repository.NewDatasetRepository(conn),
		config.Generator{Seed: 42, Customers: 10, Restaurants: 2, Orders: 50},
	).WithClock(clock)
	_, err := populator.Populate(ctx)
	require.NoError(t, err)

	// Mesmo seed e relógio reproduzem o dataset gravado
	dataset, _ := generating.NewGenerator(generating.NewSource(42), generating.DefaultCatalog(), referenceTime).
		Generate(generating.Sizes{Customers: 10, Restaurants: 2, Orders: 50})

	completed := 0
	lastCompleted := make(map[int64]time.Time)
	for _, o := range dataset.Orders {
		if o.Status != domain.OrderStatusCompleted {
			continue
		}
		completed++
		if o.OrderDate.After(lastCompleted[o.CustomerID]) {
			lastCompleted[o.CustomerID] = o.OrderDate
		}
	}

	engine := NewEngine(repository.NewMetricsRepository(conn), analyticsCfg).WithClock(clock)
	snapshot := engine.Snapshot(ctx)

	require.Len(t, snapshot.RestaurantPerformance, 2)
	totalOrders := 0
	for _, r := range snapshot.RestaurantPerformance {
		totalOrders += r.TotalOrders
	}
	assert.Equal(t, completed, totalOrders)
	assert.GreaterOrEqual(t, snapshot.RestaurantPerformance[0].TotalRevenue, snapshot.RestaurantPerformance[1].TotalRevenue)

	require.Len(t, snapshot.CustomerValues, 10)
	seen := make(map[int64]bool)
	for _, cv := range snapshot.CustomerValues {
		assert.False(t, seen[cv.CustomerID], "cliente duplicado %d", cv.CustomerID)
		seen[cv.CustomerID] = true

		last, ordered := lastCompleted[cv.CustomerID]
		if !ordered {
			assert.Equal(t, domain.CustomerStatusNeverOrdered, cv.CustomerStatus)
			assert.Zero(t, cv.EstimatedCLV)
			continue
		}
		require.NotNil(t, cv.DaysSinceLastOrder)
		assert.InDelta(t, referenceTime.Sub(last).Hours()/24, *cv.DaysSinceLastOrder, 0.001)
		if referenceTime.Sub(last) <= 30*24*time.Hour {
			assert.Equal(t, domain.CustomerStatusActive, cv.CustomerStatus)
		}
	}
	assert.Len(t, seen, 10)

	assert.NotEmpty(t, snapshot.ItemPerformance)
	assert.NotEmpty(t, snapshot.TimeBuckets)
	assert.LessOrEqual(t, len(snapshot.PeakPatterns.PeakHours), 3)
	assert.NotEmpty(t, snapshot.Insights)
	assert.Equal(t, completed, snapshot.Operations.KPIs.TotalOrders)
}

func TestEndToEnd_EmptyStore(t *testing.T) {
	conn := newSQLiteStore(t)

	engine := NewEngine(repository.NewMetricsRepository(conn), analyticsCfg).
		WithClock(func() time.Time { return referenceTime })
	snapshot := engine.Snapshot(context.Background())

	assert.Empty(t, snapshot.CustomerValues)
	assert.Empty(t, snapshot.RestaurantPerformance)
	assert.Empty(t, snapshot.ItemPerformance)
	assert.Empty(t, snapshot.TimeBuckets)

	require.NotNil(t, snapshot.Segmentation)
	assert.False(t, snapshot.Segmentation.Clustered)
	assert.Empty(t, snapshot.PeakPatterns.Hourly)
	assert.Empty(t, snapshot.PeakPatterns.PeakHours)
	assert.Empty(t, snapshot.Forecast.Historical)
	assert.Empty(t, snapshot.Forecast.Forecast)

	assert.Zero(t, snapshot.Operations.KPIs.TotalRevenue)
	assert.Empty(t, snapshot.Operations.StatusCounts)
	assert.Empty(t, snapshot.Insights)
}
