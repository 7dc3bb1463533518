// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=dataset.go -destination=mocks/dataset.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/database"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

// insertBatchSize limita as linhas por INSERT para ficar abaixo do limite de
// parâmetros dos drivers
const insertBatchSize = 200

type DatasetRepository interface {
	InsertDataset(ctx context.Context, dataset *domain.Dataset) error
	TableCounts(ctx context.Context) ([]domain.TableCount, error)
	TopCustomerSummaries(ctx context.Context, limit uint64) ([]domain.CustomerSummary, error)
}

type datasetRepository struct {
	conn *database.Connection
}

func NewDatasetRepository(conn *database.Connection) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

// InsertDataset grava todas as entidades em uma única transação, respeitando
// a ordem das chaves estrangeiras
func (r *datasetRepository) InsertDataset(ctx context.Context, dataset *domain.Dataset) error {
	if dataset == nil {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		steps := []struct {
			table string
			rows  int
			fn    func(context.Context, database.Queryer, *domain.Dataset) error
		}{
			{"customers", len(dataset.Customers), r.insertCustomers},
			{"restaurants", len(dataset.Restaurants), r.insertRestaurants},
			{"menu_items", len(dataset.MenuItems), r.insertMenuItems},
			{"orders", len(dataset.Orders), r.insertOrders},
			{"order_items", len(dataset.OrderItems), r.insertOrderItems},
		}

		for _, step := range steps {
			if step.rows == 0 {
				continue
			}
			if err := step.fn(ctx, tx, dataset); err != nil {
				return fmt.Errorf("erro ao inserir %s: %w", step.table, err)
			}
		}

		return nil
	})
}

func (r *datasetRepository) insertCustomers(ctx context.Context, q database.Queryer, dataset *domain.Dataset) error {
	return r.insertInBatches(ctx, q, len(dataset.Customers), func() squirrel.InsertBuilder {
		return r.builder().Insert("customers").Columns(
			"customer_id",
			"name",
			"address",
			"email",
			"phone",
			"registration_date",
			"is_active",
			"preferred_cuisine",
			"loyalty_tier",
		)
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		c := dataset.Customers[i]
		return b.Values(
			c.ID,
			c.Name,
			c.Address,
			c.Email,
			c.Phone,
			database.FormatTimestamp(c.RegistrationDate),
			c.IsActive,
			c.PreferredCuisine,
			string(c.LoyaltyTier),
		)
	})
}

func (r *datasetRepository) insertRestaurants(ctx context.Context, q database.Queryer, dataset *domain.Dataset) error {
	return r.insertInBatches(ctx, q, len(dataset.Restaurants), func() squirrel.InsertBuilder {
		return r.builder().Insert("restaurants").Columns(
			"restaurant_id",
			"name",
			"address_line1",
			"address_line2",
			"city",
			"state",
			"zip_code",
			"cuisine_type",
			"rating",
			"is_active",
			"created_date",
			"delivery_radius_miles",
			"avg_prep_time_minutes",
		)
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		rs := dataset.Restaurants[i]
		return b.Values(
			rs.ID,
			rs.Name,
			rs.AddressLine1,
			rs.AddressLine2,
			rs.City,
			rs.State,
			rs.ZipCode,
			rs.CuisineType,
			rs.Rating,
			rs.IsActive,
			database.FormatTimestamp(rs.CreatedDate),
			rs.DeliveryRadiusMiles,
			rs.AvgPrepTimeMinutes,
		)
	})
}

func (r *datasetRepository) insertMenuItems(ctx context.Context, q database.Queryer, dataset *domain.Dataset) error {
	return r.insertInBatches(ctx, q, len(dataset.MenuItems), func() squirrel.InsertBuilder {
		return r.builder().Insert("menu_items").Columns(
			"item_id",
			"restaurant_id",
			"item_name",
			"description",
			"price",
			"category",
			"is_available",
			"calories",
			"prep_time_minutes",
			"created_date",
			"cost_to_make",
			"is_popular",
		)
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		mi := dataset.MenuItems[i]
		return b.Values(
			mi.ID,
			mi.RestaurantID,
			mi.Name,
			mi.Description,
			mi.Price,
			mi.Category,
			mi.IsAvailable,
			mi.Calories,
			mi.PrepTimeMinutes,
			database.FormatTimestamp(mi.CreatedDate),
			mi.CostToMake,
			mi.IsPopular,
		)
	})
}

func (r *datasetRepository) insertOrders(ctx context.Context, q database.Queryer, dataset *domain.Dataset) error {
	return r.insertInBatches(ctx, q, len(dataset.Orders), func() squirrel.InsertBuilder {
		return r.builder().Insert("orders").Columns(
			"order_id",
			"customer_id",
			"restaurant_id",
			"order_date",
			"status",
			"subtotal",
			"delivery_fee",
			"tax_amount",
			"tip_amount",
			"discount_amount",
			"total_amount",
			"delivery_time_minutes",
			"payment_method",
			"order_source",
		)
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		o := dataset.Orders[i]
		return b.Values(
			o.ID,
			o.CustomerID,
			o.RestaurantID,
			database.FormatTimestamp(o.OrderDate),
			string(o.Status),
			o.Subtotal,
			o.DeliveryFee,
			o.TaxAmount,
			o.TipAmount,
			o.DiscountAmount,
			o.TotalAmount,
			o.DeliveryTimeMinutes,
			o.PaymentMethod,
			o.OrderSource,
		)
	})
}

func (r *datasetRepository) insertOrderItems(ctx context.Context, q database.Queryer, dataset *domain.Dataset) error {
	return r.insertInBatches(ctx, q, len(dataset.OrderItems), func() squirrel.InsertBuilder {
		return r.builder().Insert("order_items").Columns(
			"order_item_id",
			"order_id",
			"item_id",
			"quantity",
			"unit_price",
			"special_instructions",
			"item_rating",
		)
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		oi := dataset.OrderItems[i]
		return b.Values(
			oi.ID,
			oi.OrderID,
			oi.ItemID,
			oi.Quantity,
			oi.UnitPrice,
			oi.SpecialInstructions,
			oi.ItemRating,
		)
	})
}

// insertInBatches monta um INSERT de múltiplas linhas a cada insertBatchSize registros
func (r *datasetRepository) insertInBatches(
	ctx context.Context,
	q database.Queryer,
	total int,
	newInsert func() squirrel.InsertBuilder,
	addRow func(squirrel.InsertBuilder, int) squirrel.InsertBuilder,
) error {
	for start := 0; start < total; start += insertBatchSize {
		end := start + insertBatchSize
		if end > total {
			end = total
		}

		query := newInsert()
		for i := start; i < end; i++ {
			query = addRow(query, i)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
	}

	return nil
}

func (r *datasetRepository) TableCounts(ctx context.Context) ([]domain.TableCount, error) {
	counts := make([]domain.TableCount, 0, len(database.Tables))

	for _, table := range database.Tables {
		query, args, err := r.builder().Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		var rows int64
		if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&rows); err != nil {
			return nil, fmt.Errorf("erro ao contar %s: %w", table, err)
		}

		counts = append(counts, domain.TableCount{Table: table, Rows: rows})
	}

	return counts, nil
}

// TopCustomerSummaries lê a view customer_summary ordenada por gasto
func (r *datasetRepository) TopCustomerSummaries(ctx context.Context, limit uint64) ([]domain.CustomerSummary, error) {
	query, args, err := r.builder().
		Select(
			"cs.customer_id",
			"cs.name",
			"cs.completed_orders",
			"cs.total_spent",
			"cs.last_order_date",
		).
		From(database.SummaryView + " cs").
		OrderBy("cs.total_spent DESC", "cs.customer_id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.CustomerSummary, 0)
	for rows.Next() {
		var (
			s         domain.CustomerSummary
			lastOrder sql.NullString
		)
		if err := rows.Scan(&s.CustomerID, &s.Name, &s.CompletedOrders, &s.TotalSpent, &lastOrder); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo do cliente: %w", err)
		}
		if lastOrder.Valid {
			s.LastOrderDate = &lastOrder.String
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *datasetRepository) builder() squirrel.StatementBuilderType {
	return database.Builder(r.conn.Dialect)
}
