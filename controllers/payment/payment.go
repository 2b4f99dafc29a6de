package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/vkvijay314/cloud-cart-backend/controllers/order"
	"github.com/vkvijay314/cloud-cart-backend/gateway"
	"github.com/vkvijay314/cloud-cart-backend/models"
	"github.com/vkvijay314/cloud-cart-backend/pricing"
)

// Handler sequences the checkout workflow: cart snapshot -> gateway
// order -> signature verification -> order persistence -> cart clear.
type Handler struct {
	store     Store
	gateway   gateway.Gateway
	keySecret string
}

func NewHandler(store Store, gw gateway.Gateway, keySecret string) *Handler {
	return &Handler{store: store, gateway: gw, keySecret: keySecret}
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// POST /payment/create-order
//
// Prices the authenticated user's cart once, creates a Razorpay order
// for that total and freezes the priced lines as a checkout session.
// The gateway is never called for an empty cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := h.store.GetCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
		return
	}

	var items []models.CartItem
	if cart != nil {
		items = cart.Items
	}
	priced, total := pricing.PriceCart(items)
	if len(priced) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	gwOrder, err := h.gateway.CreateOrder(c.Request.Context(), total, "INR")
	if err != nil {
		log.Printf("razorpay create order failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Razorpay order"})
		return
	}

	session := &models.CheckoutSession{
		GatewayOrderID: gwOrder.ID,
		UserID:         userID,
		Amount:         total,
		Currency:       gwOrder.Currency,
		Status:         models.CheckoutStatusPending,
		CreatedAt:      time.Now(),
	}
	for _, it := range priced {
		session.Items = append(session.Items, models.CheckoutItem{
			GatewayOrderID: gwOrder.ID,
			ProductID:      it.ProductID,
			Name:           it.Name,
			Price:          it.Price,
			Quantity:       it.Quantity,
		})
	}
	if err := h.store.CreateSession(session); err != nil {
		// The gateway order stands until Razorpay expires it; nothing
		// else was committed.
		log.Printf("failed to persist checkout session %s: %v", gwOrder.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Razorpay order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       gwOrder.ID,
		"amount":   total,
		"currency": gwOrder.Currency,
	})
}

// POST /payment/verify
//
// Validates the gateway callback signature, then builds the paid order
// from the frozen checkout session. Replayed callbacks return the
// already-created order instead of inserting a second one.
func (h *Handler) VerifyPayment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	// Signature must pass before anything is read or persisted; a
	// forged callback learns nothing, not even that the payment id
	// exists.
	if !gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, h.keySecret) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
		return
	}

	// Idempotency: a replayed callback for an already-recorded payment
	// must not create a duplicate order.
	existing, err := h.store.FindOrderByPaymentID(req.RazorpayPaymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment already verified", "order": existing})
		return
	}

	session, err := h.store.GetSession(req.RazorpayOrderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification error"})
		return
	}
	if session == nil || len(session.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart not found"})
		return
	}

	order, err := h.store.FinalizeOrder(session, req.RazorpayPaymentID)
	if errors.Is(err, ErrAlreadyProcessed) {
		if existing, lookupErr := h.store.FindOrderByPaymentID(req.RazorpayPaymentID); lookupErr == nil && existing != nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment already verified", "order": existing})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
		return
	}
	if err != nil {
		// Money has moved but the order write failed; this must reach
		// an operator, a blind retry risks duplicates.
		log.Printf("ALERT: order persist failed after verified payment %s (user %s): %v", req.RazorpayPaymentID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification error"})
		return
	}

	// The order stands regardless of cart clearing: rolling back a
	// completed payment is not an option.
	if err := h.store.ClearCart(session.UserID); err != nil {
		log.Printf("cart clear failed after payment %s (user %s), needs reconciliation: %v", req.RazorpayPaymentID, session.UserID, err)
	}

	orderControllers.BroadcastNewOrder(*order)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified & order placed", "order": order})
}
