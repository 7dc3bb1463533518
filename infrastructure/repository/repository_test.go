package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/database"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

func newMockConnection(t *testing.T) (*database.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return database.NewConnectionFromDB(db, database.SQLite{}), mock
}

func TestMetricsRepository_CustomerValues(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewMetricsRepository(conn)
	reference := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"customer_id", "name", "loyalty_tier", "order_frequency", "avg_order_value", "total_spent", "days_since_last_order",
	}).
		AddRow(1, "Ana", "Gold", 3, 25.5, 76.5, 4.25).
		AddRow(2, "Bruno", "Bronze", 0, 0, 0, nil)

	mock.ExpectQuery("FROM customers c LEFT JOIN orders o").
		WithArgs("2024-03-10 12:00:00", "completed").
		WillReturnRows(rows)

	customers, err := repo.CustomerValues(context.Background(), reference)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, int64(1), customers[0].CustomerID)
	assert.Equal(t, 3, customers[0].OrderFrequency)
	require.NotNil(t, customers[0].DaysSinceLastOrder)
	assert.InDelta(t, 4.25, *customers[0].DaysSinceLastOrder, 1e-9)

	assert.Nil(t, customers[1].DaysSinceLastOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsRepository_QueryErrors(t *testing.T) {
	tests := []struct {
		name string
		call func(r MetricsRepository) error
	}{
		{
			name: "Desempenho de restaurantes",
			call: func(r MetricsRepository) error {
				_, err := r.RestaurantPerformance(context.Background())
				return err
			},
		},
		{
			name: "Desempenho de itens",
			call: func(r MetricsRepository) error {
				_, err := r.ItemPerformance(context.Background())
				return err
			},
		},
		{
			name: "Tempos de entrega",
			call: func(r MetricsRepository) error {
				_, err := r.DeliveryTimes(context.Background())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			mock.ExpectQuery("SELECT").WillReturnError(errors.New("no such table"))

			err := tt.call(NewMetricsRepository(conn))
			assert.ErrorContains(t, err, "no such table")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMetricsRepository_TimeBuckets(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewMetricsRepository(conn)
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"order_date", "hour_of_day", "day_of_week", "order_count", "daily_revenue", "avg_order_value", "unique_customers", "avg_delivery_time",
	}).AddRow("2024-01-05", 19, 5, 2, 80.0, 40.0, 2, 35.5)

	mock.ExpectQuery("FROM orders o WHERE o.status = \\? AND o.order_date >= \\?").
		WithArgs("completed", "2024-01-01 00:00:00").
		WillReturnRows(rows)

	buckets, err := repo.TimeBuckets(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	assert.Equal(t, "2024-01-05", buckets[0].OrderDate.String())
	assert.Equal(t, 19, buckets[0].HourOfDay)
	assert.Equal(t, 5, buckets[0].DayOfWeek)
	assert.Equal(t, 80.0, buckets[0].Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsRepository_KPISummary(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewMetricsRepository(conn)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows([]string{"revenue", "orders"}).AddRow(300.0, 4))
	mock.ExpectQuery("SELECT COUNT\\(DISTINCT o.customer_id\\)").
		WithArgs("completed", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(3))

	kpis, err := repo.KPISummary(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 300.0, kpis.TotalRevenue)
	assert.Equal(t, 4, kpis.TotalOrders)
	assert.Equal(t, 3, kpis.ActiveCustomers)
	assert.Equal(t, 75.0, kpis.AvgOrderValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatasetRepository_InsertDataset(t *testing.T) {
	customers := make([]domain.Customer, 250)
	for i := range customers {
		customers[i] = domain.Customer{
			ID:          int64(i + 1),
			Name:        fmt.Sprintf("Cliente %d", i+1),
			Email:       fmt.Sprintf("c%d@example.com", i+1),
			LoyaltyTier: domain.LoyaltyTierBronze,
		}
	}

	tests := []struct {
		name    string
		dataset *domain.Dataset
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "Clientes são inseridos em lotes e tabelas vazias são ignoradas",
			dataset: &domain.Dataset{
				Customers:   customers,
				Restaurants: []domain.Restaurant{{ID: 1, Name: "Dragon Palace", IsActive: true}},
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 200))
				mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 50))
				mock.ExpectExec("INSERT INTO restaurants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Erro de inserção desfaz a transação",
			dataset: &domain.Dataset{
				Customers: customers[:1],
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO customers").WillReturnError(errors.New("constraint failed"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := NewDatasetRepository(conn).InsertDataset(context.Background(), tt.dataset)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDatasetRepository_TableCounts(t *testing.T) {
	conn, mock := newMockConnection(t)

	for i, table := range database.Tables {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM " + table).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(i * 10))
	}

	counts, err := NewDatasetRepository(conn).TableCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, len(database.Tables))
	assert.Equal(t, "order_items", counts[4].Table)
	assert.Equal(t, int64(40), counts[4].Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
