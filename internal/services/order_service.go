package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderFilter struct {
	Status string
	Type   string
}

// OrderPatch holds the fields of a partial order update. Nil fields are left untouched.
type OrderPatch struct {
	CustomerName        *string
	Email               *string
	Phone               *string
	Address             *string
	Items               *[]models.OrderItem
	Total               *float64
	SpecialInstructions *string
	Type                *string
	Table               *int
	PaymentMethod       *string
	PaymentStatus       *string
	Status              *models.OrderStatus
}

type OrderService interface {
	// Create assigns the next order number of the day and stores the order
	Create(ctx context.Context, order *models.Order) error
	// List returns orders newest first
	List(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, id string, patch OrderPatch) (*models.Order, error)
	SetStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	db       *gorm.DB
	notifier OrderNotifier
	now      func() time.Time
}

// NewOrderService builds the order service. A nil clock means time.Now.
func NewOrderService(db *gorm.DB, notifier OrderNotifier, clock func() time.Time) OrderService {
	if clock == nil {
		clock = time.Now
	}
	if notifier == nil {
		notifier = Notifiers{}
	}
	return &orderService{db: db, notifier: notifier, now: clock}
}

func (s *orderService) Create(ctx context.Context, order *models.Order) error {
	order.Email = strings.ToLower(strings.TrimSpace(order.Email))
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}
	if err := checkOrder(order); err != nil {
		return err
	}
	if order.Total <= 0 {
		order.Total = order.ItemsTotal()
	}

	day := models.OrderDay(s.now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter, err := nextOrderCounter(tx, day)
		if err != nil {
			return err
		}
		order.OrderNumber = models.FormatOrderNumber(day, counter)
		return tx.Create(order).Error
	})
	if err != nil {
		return err
	}

	s.notifier.OrderChanged(ctx, OrderCreated, *order)
	return nil
}

// nextOrderCounter bumps the day's counter in a single upsert and reads it back.
// Must run inside the transaction that inserts the order.
func nextOrderCounter(tx *gorm.DB, day string) (int, error) {
	seq := models.OrderSequence{Day: day, Counter: 1}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"counter": gorm.Expr("order_sequences.counter + 1")}),
	}).Create(&seq).Error
	if err != nil {
		return 0, err
	}
	if err := tx.First(&seq, "day = ?", day).Error; err != nil {
		return 0, err
	}
	return seq.Counter, nil
}

func (s *orderService) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	q := s.db.WithContext(ctx).Model(&models.Order{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// statusAttempts bounds how often Update re-reads an order whose status moved under it
const statusAttempts = 3

// Update applies the patch with a compare-and-swap on the status the order had when it was read,
// so two concurrent transitions out of the same state cannot both succeed.
func (s *orderService) Update(ctx context.Context, id string, patch OrderPatch) (*models.Order, error) {
	for attempt := 0; attempt < statusAttempts; attempt++ {
		order, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		from := order.Status
		if err := applyPatch(order, patch); err != nil {
			return nil, err
		}

		result := s.db.WithContext(ctx).Model(order).
			Where("status = ?", from).
			Select("*").Omit("id", "created_at").
			Updates(order)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			continue
		}

		s.notifier.OrderChanged(ctx, OrderUpdated, *order)
		return order, nil
	}
	return nil, fmt.Errorf("%w: order %s kept changing while it was updated", ErrInvalidTransition, id)
}

func applyPatch(order *models.Order, patch OrderPatch) error {
	if patch.Status != nil {
		if err := checkTransition(order.Status, *patch.Status); err != nil {
			return err
		}
		order.Status = *patch.Status
	}
	if patch.CustomerName != nil {
		order.CustomerName = *patch.CustomerName
	}
	if patch.Email != nil {
		order.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.Phone != nil {
		order.Phone = *patch.Phone
	}
	if patch.Address != nil {
		order.Address = *patch.Address
	}
	if patch.SpecialInstructions != nil {
		order.SpecialInstructions = *patch.SpecialInstructions
	}
	if patch.PaymentMethod != nil {
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Type != nil {
		order.Type = *patch.Type
		if order.Type != models.OrderTypeDineIn && patch.Table == nil {
			order.Table = nil
		}
	}
	if patch.Table != nil {
		table := *patch.Table
		order.Table = &table
	}
	if patch.Items != nil {
		order.Items = *patch.Items
		if patch.Total == nil {
			order.Total = order.ItemsTotal()
		}
	}
	if patch.Total != nil {
		order.Total = *patch.Total
	}
	return checkOrder(order)
}

func (s *orderService) SetStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	return s.Update(ctx, id, OrderPatch{Status: &status})
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.notifier.OrderChanged(ctx, OrderDeleted, *order)
	return nil
}

func checkTransition(from, to models.OrderStatus) error {
	if !to.Valid() {
		return invalid("Invalid status. Must be one of: pending, preparing, completed, cancelled")
	}
	if !from.CanTransitionTo(to) {
		return &TransitionError{From: string(from), To: string(to)}
	}
	return nil
}

// checkOrder enforces the invariants shared by create and update
func checkOrder(order *models.Order) error {
	if len(order.Items) == 0 {
		return invalid("Order must contain at least one item")
	}
	for _, it := range order.Items {
		if strings.TrimSpace(it.Name) == "" || it.Quantity < 1 || it.Price < 0 {
			return invalid("Each item needs a name, a price and a quantity of at least 1")
		}
	}
	if !models.ValidOrderType(order.Type) {
		return invalid("Invalid order type. Must be one of: delivery, takeaway, dine-in")
	}
	if !models.ValidPaymentMethod(order.PaymentMethod) {
		return invalid("Invalid payment method. Must be one of: card, cash, paypal")
	}
	if !models.ValidPaymentStatus(order.PaymentStatus) {
		return invalid("Invalid payment status. Must be one of: pending, paid, failed")
	}
	if order.Total < 0 {
		return invalid("Total cannot be negative")
	}
	if err := order.CheckTable(); err != nil {
		return invalid(err.Error())
	}
	return nil
}
