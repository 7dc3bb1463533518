package repository

//go:generate mockgen -source=metrics.go -destination=mocks/metrics.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/database"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

const (
	customersTable   = "customers c"
	restaurantsTable = "restaurants r"
	menuItemsTable   = "menu_items mi"
	ordersTable      = "orders o"
)

// MetricsRepository executa as agregações usadas pelo motor de métricas.
// Todas as consultas são somente leitura.
type MetricsRepository interface {
	CustomerValues(ctx context.Context, reference time.Time) ([]domain.CustomerValue, error)
	RestaurantPerformance(ctx context.Context) ([]domain.RestaurantPerformance, error)
	ItemPerformance(ctx context.Context) ([]domain.ItemPerformance, error)
	TimeBuckets(ctx context.Context, since time.Time) ([]domain.TimeBucket, error)
	KPISummary(ctx context.Context, activeSince time.Time) (domain.KPISummary, error)
	StatusDistribution(ctx context.Context) ([]domain.CategoryCount, error)
	DeliveryTimes(ctx context.Context) ([]float64, error)
	PaymentMethodDistribution(ctx context.Context) ([]domain.CategoryCount, error)
}

type metricsRepository struct {
	conn    database.Queryer
	dialect database.Dialect
}

func NewMetricsRepository(conn *database.Connection) MetricsRepository {
	return &metricsRepository{
		conn:    conn,
		dialect: conn.Dialect,
	}
}

// CustomerValues agrega os pedidos concluídos de cada cliente. A recência é
// calculada em dias a partir do instante de referência e fica nula para quem
// nunca concluiu um pedido.
func (r *metricsRepository) CustomerValues(ctx context.Context, reference time.Time) ([]domain.CustomerValue, error) {
	daysSince := r.dialect.DaysSince("MAX(o.order_date)") + " AS days_since_last_order"

	query, args, err := r.builder().
		Select(
			"c.customer_id",
			"c.name",
			"c.loyalty_tier",
			"COUNT(o.order_id) AS order_frequency",
			"COALESCE(AVG(o.total_amount), 0) AS avg_order_value",
			"COALESCE(SUM(o.total_amount), 0) AS total_spent",
		).
		Column(squirrel.Expr(daysSince, database.FormatTimestamp(reference))).
		From(customersTable).
		LeftJoin("orders o ON o.customer_id = c.customer_id AND o.status = ?", string(domain.OrderStatusCompleted)).
		GroupBy("c.customer_id", "c.name", "c.loyalty_tier").
		OrderBy("c.customer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.CustomerValue, 0)
	for rows.Next() {
		customer, err := r.scanCustomerValue(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, *customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *metricsRepository) RestaurantPerformance(ctx context.Context) ([]domain.RestaurantPerformance, error) {
	query, args, err := r.builder().
		Select(
			"r.restaurant_id",
			"r.name",
			"r.city",
			"r.cuisine_type",
			"COALESCE(r.rating, 0) AS rating",
			"COUNT(DISTINCT o.order_id) AS total_orders",
			"COUNT(DISTINCT o.customer_id) AS unique_customers",
			"COALESCE(SUM(o.total_amount), 0) AS total_revenue",
			"COALESCE(AVG(o.total_amount), 0) AS avg_order_value",
			"COALESCE(AVG(o.delivery_time_minutes), 0) AS avg_delivery_time",
		).
		From(restaurantsTable).
		LeftJoin("orders o ON o.restaurant_id = r.restaurant_id AND o.status = ?", string(domain.OrderStatusCompleted)).
		Where(squirrel.Eq{"r.is_active": true}).
		GroupBy("r.restaurant_id", "r.name", "r.city", "r.cuisine_type", "r.rating").
		OrderBy("total_revenue DESC", "r.restaurant_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.RestaurantPerformance, 0)
	for rows.Next() {
		var rp domain.RestaurantPerformance
		err := rows.Scan(
			&rp.RestaurantID,
			&rp.RestaurantName,
			&rp.City,
			&rp.CuisineType,
			&rp.Rating,
			&rp.TotalOrders,
			&rp.UniqueCustomers,
			&rp.TotalRevenue,
			&rp.AvgOrderValue,
			&rp.AvgDeliveryTime,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear restaurante: %w", err)
		}
		restaurants = append(restaurants, rp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return restaurants, nil
}

func (r *metricsRepository) ItemPerformance(ctx context.Context) ([]domain.ItemPerformance, error) {
	query, args, err := r.builder().
		Select(
			"mi.item_id",
			"mi.item_name",
			"mi.price",
			"mi.cost_to_make",
			"mi.category",
			"r.name AS restaurant_name",
			"r.cuisine_type",
			"COUNT(oi.order_item_id) AS times_ordered",
			"COALESCE(SUM(oi.quantity), 0) AS total_quantity_sold",
			"COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_revenue",
			"COALESCE(AVG(oi.item_rating), 0) AS avg_rating",
		).
		From(menuItemsTable).
		Join("restaurants r ON r.restaurant_id = mi.restaurant_id").
		LeftJoin("order_items oi ON oi.item_id = mi.item_id").
		Where(squirrel.Eq{"mi.is_available": true}).
		GroupBy("mi.item_id", "mi.item_name", "mi.price", "mi.cost_to_make", "mi.category", "r.name", "r.cuisine_type").
		OrderBy("total_revenue DESC", "mi.item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ItemPerformance, 0)
	for rows.Next() {
		var it domain.ItemPerformance
		err := rows.Scan(
			&it.ItemID,
			&it.ItemName,
			&it.Price,
			&it.CostToMake,
			&it.Category,
			&it.RestaurantName,
			&it.CuisineType,
			&it.TimesOrdered,
			&it.TotalQuantitySold,
			&it.TotalRevenue,
			&it.AvgRating,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do cardápio: %w", err)
		}
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// TimeBuckets agrupa os pedidos concluídos desde since por data, hora e dia da semana
func (r *metricsRepository) TimeBuckets(ctx context.Context, since time.Time) ([]domain.TimeBucket, error) {
	dateExpr := r.dialect.DateOf("o.order_date")
	hourExpr := r.dialect.HourOf("o.order_date")
	dowExpr := r.dialect.DayOfWeek("o.order_date")

	query, args, err := r.builder().
		Select(
			dateExpr+" AS order_date",
			hourExpr+" AS hour_of_day",
			dowExpr+" AS day_of_week",
			"COUNT(*) AS order_count",
			"SUM(o.total_amount) AS daily_revenue",
			"AVG(o.total_amount) AS avg_order_value",
			"COUNT(DISTINCT o.customer_id) AS unique_customers",
			"COALESCE(AVG(o.delivery_time_minutes), 0) AS avg_delivery_time",
		).
		From(ordersTable).
		Where(squirrel.Eq{"o.status": string(domain.OrderStatusCompleted)}).
		Where(squirrel.GtOrEq{"o.order_date": database.FormatTimestamp(since)}).
		GroupBy(dateExpr, hourExpr, dowExpr).
		OrderBy("order_date", "hour_of_day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	buckets := make([]domain.TimeBucket, 0)
	for rows.Next() {
		bucket, err := r.scanTimeBucket(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear série temporal: %w", err)
		}
		buckets = append(buckets, *bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}

// KPISummary calcula receita, pedidos e ticket médio dos pedidos concluídos e
// os clientes com pedido concluído desde activeSince
func (r *metricsRepository) KPISummary(ctx context.Context, activeSince time.Time) (domain.KPISummary, error) {
	var kpis domain.KPISummary

	query, args, err := r.builder().
		Select("COALESCE(SUM(o.total_amount), 0)", "COUNT(*)").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": string(domain.OrderStatusCompleted)}).
		ToSql()
	if err != nil {
		return kpis, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&kpis.TotalRevenue, &kpis.TotalOrders); err != nil {
		return kpis, fmt.Errorf("erro ao calcular receita total: %w", err)
	}

	query, args, err = r.builder().
		Select("COUNT(DISTINCT o.customer_id)").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": string(domain.OrderStatusCompleted)}).
		Where(squirrel.GtOrEq{"o.order_date": database.FormatTimestamp(activeSince)}).
		ToSql()
	if err != nil {
		return kpis, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&kpis.ActiveCustomers); err != nil {
		return kpis, fmt.Errorf("erro ao contar clientes ativos: %w", err)
	}

	if kpis.TotalOrders > 0 {
		kpis.AvgOrderValue = kpis.TotalRevenue / float64(kpis.TotalOrders)
	}

	return kpis, nil
}

func (r *metricsRepository) StatusDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, "o.status")
}

func (r *metricsRepository) PaymentMethodDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	return r.countBy(ctx, "o.payment_method")
}

func (r *metricsRepository) DeliveryTimes(ctx context.Context) ([]float64, error) {
	query, args, err := r.builder().
		Select("o.delivery_time_minutes").
		From(ordersTable).
		Where(squirrel.NotEq{"o.delivery_time_minutes": nil}).
		OrderBy("o.order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	times := make([]float64, 0)
	for rows.Next() {
		var minutes float64
		if err := rows.Scan(&minutes); err != nil {
			return nil, fmt.Errorf("erro ao escanear tempo de entrega: %w", err)
		}
		times = append(times, minutes)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return times, nil
}

// countBy conta todos os pedidos agrupados pela coluna informada
func (r *metricsRepository) countBy(ctx context.Context, column string) ([]domain.CategoryCount, error) {
	query, args, err := r.builder().
		Select(column, "COUNT(*) AS total").
		From(ordersTable).
		Where(squirrel.NotEq{column: nil}).
		GroupBy(column).
		OrderBy("total DESC", column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem: %w", err)
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *metricsRepository) scanCustomerValue(rows *sql.Rows) (*domain.CustomerValue, error) {
	var (
		customer  domain.CustomerValue
		daysSince sql.NullFloat64
	)

	err := rows.Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.LoyaltyTier,
		&customer.OrderFrequency,
		&customer.AvgOrderValue,
		&customer.TotalSpent,
		&daysSince,
	)
	if err != nil {
		return nil, err
	}

	if daysSince.Valid {
		customer.DaysSinceLastOrder = &daysSince.Float64
	}

	return &customer, nil
}

func (r *metricsRepository) scanTimeBucket(rows *sql.Rows) (*domain.TimeBucket, error) {
	var (
		bucket  domain.TimeBucket
		rawDate string
	)

	err := rows.Scan(
		&rawDate,
		&bucket.HourOfDay,
		&bucket.DayOfWeek,
		&bucket.OrderCount,
		&bucket.Revenue,
		&bucket.AvgOrderValue,
		&bucket.UniqueCustomers,
		&bucket.AvgDeliveryTime,
	)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}
	bucket.OrderDate = date

	return &bucket, nil
}

func (r *metricsRepository) builder() squirrel.StatementBuilderType {
	return database.Builder(r.dialect)
}
