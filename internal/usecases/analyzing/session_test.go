package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/repository/mocks"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	referenceTime = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	analyticsCfg  = config.Analytics{Clusters: 4, ForecastDays: 7, WindowDays: 90, ActiveDays: 30, Seed: 42}
)

func newTestEngine(repo *mocks.MockMetricsRepository) *Engine {
	return NewEngine(repo, analyticsCfg).WithClock(func() time.Time { return referenceTime })
}

func TestSession_CachesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetricsRepository(ctrl)
	repo.EXPECT().
		CustomerValues(gomock.Any(), referenceTime).
		Return([]domain.CustomerValue{{CustomerID: 1, OrderFrequency: 2, AvgOrderValue: 10, TotalSpent: 20, DaysSinceLastOrder: days(3)}}, nil).
		Times(1)

	session := newTestEngine(repo).NewSession()
	assert.Len(t, session.ID(), 6)
	assert.Equal(t, referenceTime, session.Reference())

	first := session.CustomerValues(context.Background())
	second := session.CustomerValues(context.Background())

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.CustomerStatusActive, first[0].CustomerStatus)
	assert.InDelta(t, 240.0, first[0].EstimatedCLV, 1e-9)

	// A segmentação reaproveita os registros já carregados
	segmentation := session.Segmentation(context.Background())
	assert.False(t, segmentation.Clustered)
}

func TestSession_TimeWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetricsRepository(ctrl)
	expectedSince := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().TimeBuckets(gomock.Any(), expectedSince).Return(nil, nil).Times(1)

	session := newTestEngine(repo).NewSession()
	buckets := session.TimeBuckets(context.Background())

	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
	assert.Empty(t, session.PeakPatterns(context.Background()).PeakHours)
	assert.Empty(t, session.Forecast(context.Background()).Forecast)
}

func TestSession_QueryErrorsYieldEmptyResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queryErr := errors.New("no such table: orders")

	repo := mocks.NewMockMetricsRepository(ctrl)
	repo.EXPECT().CustomerValues(gomock.Any(), gomock.Any()).Return(nil, queryErr)
	repo.EXPECT().RestaurantPerformance(gomock.Any()).Return(nil, queryErr)
	repo.EXPECT().ItemPerformance(gomock.Any()).Return(nil, queryErr)
	repo.EXPECT().TimeBuckets(gomock.Any(), gomock.Any()).Return(nil, queryErr)
	repo.EXPECT().KPISummary(gomock.Any(), referenceTime.AddDate(0, 0, -30)).Return(domain.KPISummary{}, queryErr)
	repo.EXPECT().StatusDistribution(gomock.Any()).Return(nil, queryErr)
	repo.EXPECT().DeliveryTimes(gomock.Any()).Return(nil, queryErr)
	repo.EXPECT().PaymentMethodDistribution(gomock.Any()).Return(nil, queryErr)

	snapshot := newTestEngine(repo).Snapshot(context.Background())

	require.NotNil(t, snapshot)
	assert.NotEmpty(t, snapshot.SessionID)
	assert.Equal(t, referenceTime, snapshot.GeneratedAt)

	assert.NotNil(t, snapshot.CustomerValues)
	assert.Empty(t, snapshot.CustomerValues)
	assert.NotNil(t, snapshot.RestaurantPerformance)
	assert.Empty(t, snapshot.RestaurantPerformance)
	assert.NotNil(t, snapshot.ItemPerformance)
	assert.NotNil(t, snapshot.TimeBuckets)

	require.NotNil(t, snapshot.Segmentation)
	assert.False(t, snapshot.Segmentation.Clustered)
	require.NotNil(t, snapshot.Forecast)
	assert.Empty(t, snapshot.Forecast.Forecast)
	require.NotNil(t, snapshot.PeakPatterns)
	assert.Empty(t, snapshot.PeakPatterns.PeakDays)

	require.NotNil(t, snapshot.Operations)
	assert.Zero(t, snapshot.Operations.KPIs.TotalOrders)
	assert.NotNil(t, snapshot.Operations.StatusCounts)
	assert.NotNil(t, snapshot.Operations.DeliveryTimes)
	assert.NotNil(t, snapshot.Operations.PaymentMethods)

	assert.NotNil(t, snapshot.Insights)
	assert.Empty(t, snapshot.Insights)
}

func TestSession_RunAllDerivesRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetricsRepository(ctrl)
	repo.EXPECT().CustomerValues(gomock.Any(), gomock.Any()).Return([]domain.CustomerValue{
		{CustomerID: 1, Name: "Ana", OrderFrequency: 1, AvgOrderValue: 30, TotalSpent: 30, DaysSinceLastOrder: days(100)},
	}, nil)
	repo.EXPECT().RestaurantPerformance(gomock.Any()).Return([]domain.RestaurantPerformance{
		{RestaurantID: 1, RestaurantName: "Bella Vista", TotalRevenue: 30, UniqueCustomers: 1, Rating: 4.5},
	}, nil)
	repo.EXPECT().ItemPerformance(gomock.Any()).Return([]domain.ItemPerformance{
		{ItemID: 1, ItemName: "Lasagna", Price: 20, CostToMake: 5, TotalRevenue: 20},
	}, nil)
	repo.EXPECT().TimeBuckets(gomock.Any(), gomock.Any()).Return([]domain.TimeBucket{
		{OrderDate: domain.NewDate(referenceTime), HourOfDay: 19, DayOfWeek: 6, OrderCount: 1, Revenue: 30, AvgOrderValue: 30, UniqueCustomers: 1},
	}, nil)
	repo.EXPECT().KPISummary(gomock.Any(), gomock.Any()).Return(domain.KPISummary{TotalRevenue: 30, TotalOrders: 1, AvgOrderValue: 30}, nil)
	repo.EXPECT().StatusDistribution(gomock.Any()).Return([]domain.CategoryCount{{Label: "completed", Count: 1}}, nil)
	repo.EXPECT().DeliveryTimes(gomock.Any()).Return([]float64{35}, nil)
	repo.EXPECT().PaymentMethodDistribution(gomock.Any()).Return([]domain.CategoryCount{{Label: "cash", Count: 1}}, nil)

	snapshot := newTestEngine(repo).Snapshot(context.Background())

	assert.Equal(t, domain.CustomerStatusChurned, snapshot.CustomerValues[0].CustomerStatus)
	assert.Equal(t, 1, snapshot.RestaurantPerformance[0].Position)
	require.NotNil(t, snapshot.ItemPerformance[0].ProfitMarginPct)
	assert.InDelta(t, 75.0, *snapshot.ItemPerformance[0].ProfitMarginPct, 1e-9)
	assert.Equal(t, []int{19}, snapshot.PeakPatterns.PeakHours)
	assert.Equal(t, []string{"Saturday"}, snapshot.PeakPatterns.PeakDays)
	assert.Len(t, snapshot.Forecast.Forecast, 7)
	assert.Equal(t, 1, snapshot.Operations.KPIs.TotalOrders)
	assert.Len(t, snapshot.Insights, 9)
}
