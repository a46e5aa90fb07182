package persistence

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderNumberSequence is the PostgreSQL sequence that numbers orders
const OrderNumberSequence = "order_number_seq"

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Find returns a page of orders (without items) and the total count, newest first
func (r *GormOrderRepository) Find(ctx context.Context, query trade.OrderQuery) ([]trade.Order, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := r.applyQuery(db.Model(&models.OrderModel{}), query).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []trade.Order{}, 0, nil
	}

	listQuery := r.applyQuery(db.Model(&models.OrderModel{}), query).
		Order(orderSortColumns.orderBy(query.OrderBy, query.OrderDir)).
		Order("order_number DESC")
	if query.PageSize > 0 {
		listQuery = listQuery.Offset(query.Offset()).Limit(query.PageSize)
	}

	var rows []models.OrderModel
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	orders := make([]trade.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, total, nil
}

// Create inserts the order and its items in one transaction and assigns
// the sequential order number
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumber(tx)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}

		model := models.OrderModelFromDomain(order)
		items := model.Items
		model.Items = nil
		if err := tx.Create(model).Error; err != nil {
			return translateError(err)
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateStatus persists a status change with optimistic locking.
// The aggregate has already bumped its version, so the stored row must
// still hold the previous one.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, order *trade.Order) error {
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", order.ID, order.Version-1).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"version":    order.Version,
			"updated_at": order.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
			Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes the order and its items
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// Stats aggregates order counts and revenue
func (r *GormOrderRepository) Stats(ctx context.Context) (*trade.OrderStats, error) {
	var rows []struct {
		Status  trade.OrderStatus
		Count   int64
		Revenue decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &trade.OrderStats{
		ByStatus: make(map[trade.OrderStatus]int64, len(trade.AllOrderStatuses)),
		Revenue:  decimal.Zero,
	}
	for _, s := range trade.AllOrderStatuses {
		stats.ByStatus[s] = 0
	}
	for _, row := range rows {
		stats.Total += row.Count
		stats.ByStatus[row.Status] = row.Count
		if row.Status != trade.OrderStatusCanceled {
			stats.Revenue = stats.Revenue.Add(row.Revenue)
		}
	}
	stats.Revenue = stats.Revenue.Round(2)
	return stats, nil
}

func (r *GormOrderRepository) applyQuery(query *gorm.DB, q trade.OrderQuery) *gorm.DB {
	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := containsPattern(search)
		match := `LOWER(customer_name) LIKE ? ESCAPE '\' OR phone_primary LIKE ? ESCAPE '\' OR phone_secondary LIKE ? ESCAPE '\'`
		if n, err := strconv.ParseInt(strings.TrimPrefix(search, "#"), 10, 64); err == nil {
			query = query.Where(match+" OR order_number = ?", pattern, pattern, pattern, n)
		} else {
			query = query.Where(match, pattern, pattern, pattern)
		}
	}
	if q.From != nil {
		query = query.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("created_at < ?", *q.To)
	}
	return query
}

// nextOrderNumber draws from the PostgreSQL sequence. Other dialects, used in
// tests, fall back to max+1 inside the surrounding transaction.
func nextOrderNumber(tx *gorm.DB) (int64, error) {
	var n int64
	if tx.Dialector.Name() == "postgres" {
		if err := tx.Raw("SELECT nextval('" + OrderNumberSequence + "')").Scan(&n).Error; err != nil {
			return 0, err
		}
		return n, nil
	}
	if err := tx.Model(&models.OrderModel{}).
		Select("COALESCE(MAX(order_number), 0) + 1").
		Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
