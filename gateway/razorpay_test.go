package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkvijay314/cloud-cart-backend/config"
)

func newTestClient(baseURL string) Gateway {
	return NewRazorpayClient(&config.Razorpay{
		KeyID:          "rzp_test_key",
		KeySecret:      "rzp_test_secret",
		APIURL:         baseURL,
		TimeoutSeconds: 2,
	})
}

func TestCreateOrder_Success(t *testing.T) {
	var gotBody createOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(createOrderResult{
			ID:       "order_test123",
			Amount:   gotBody.Amount,
			Currency: gotBody.Currency,
			Receipt:  gotBody.Receipt,
		})
	}))
	defer srv.Close()

	order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 499.99, "INR")

	require.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, 499.99, order.Amount)
	// Amount crosses the wire in paise.
	assert.Equal(t, int64(49999), gotBody.Amount)
	assert.NotEmpty(t, gotBody.Receipt)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 100, "INR")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestCreateOrder_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 100, "INR")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestCreateOrder_EmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(createOrderResult{})
	}))
	defer srv.Close()

	order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 100, "INR")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2500), MinorUnits(25))
	assert.Equal(t, int64(49999), MinorUnits(499.99))
	// Float arithmetic artifacts round away.
	assert.Equal(t, int64(1010), MinorUnits(10.1*1.0))
	assert.Equal(t, int64(0), MinorUnits(0))
}
