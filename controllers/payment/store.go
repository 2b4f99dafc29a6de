package paymentControllers

import (
	"errors"
	"time"

	"github.com/vkvijay314/cloud-cart-backend/models"
	"gorm.io/gorm"
)

// ErrAlreadyProcessed reports that a checkout session was completed by
// an earlier (or concurrent) callback for the same gateway order.
var ErrAlreadyProcessed = errors.New("checkout session already processed")

// Store is the persistence contract the checkout flow needs. A gorm
// implementation backs production; tests substitute their own.
type Store interface {
	// GetCart returns the user's cart with product associations
	// resolved, or nil if the user has no cart yet.
	GetCart(userID string) (*models.Cart, error)
	CreateSession(session *models.CheckoutSession) error
	GetSession(gatewayOrderID string) (*models.CheckoutSession, error)
	// FindOrderByPaymentID returns nil, nil when no order carries the
	// given gateway payment id.
	FindOrderByPaymentID(paymentID string) (*models.Order, error)
	// FinalizeOrder marks the session completed and persists the paid
	// order in one transaction. Returns ErrAlreadyProcessed when the
	// session was no longer pending.
	FinalizeOrder(session *models.CheckoutSession, paymentID string) (*models.Order, error)
	// ClearCart empties the user's cart; clearing an absent or already
	// empty cart is a no-op success.
	ClearCart(userID string) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetCart(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) CreateSession(session *models.CheckoutSession) error {
	return s.db.Create(session).Error
}

func (s *GormStore) GetSession(gatewayOrderID string) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := s.db.Preload("Items").First(&session, "gateway_order_id = ?", gatewayOrderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *GormStore) FindOrderByPaymentID(paymentID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Where("payment_id = ?", paymentID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) FinalizeOrder(session *models.CheckoutSession, paymentID string) (*models.Order, error) {
	order := &models.Order{
		UserID:        session.UserID,
		TotalAmount:   session.Amount,
		Status:        models.OrderStatusPaid,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentMethod: "razorpay",
		PaymentID:     paymentID,
		CreatedAt:     time.Now(),
	}
	for _, it := range session.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Predicate update serializes concurrent callbacks for the
		// same gateway order: only one flips pending -> completed.
		res := tx.Model(&models.CheckoutSession{}).
			Where("gateway_order_id = ? AND status = ?", session.GatewayOrderID, models.CheckoutStatusPending).
			Update("status", models.CheckoutStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *GormStore) ClearCart(userID string) error {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}
