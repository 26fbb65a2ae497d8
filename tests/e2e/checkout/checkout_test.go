//go:build e2e

package checkout_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"commerce-core/internal/domain/identity"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/handler/dto/request"
	"commerce-core/internal/handler/dto/response"
	"commerce-core/internal/handler/middleware"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/authtest"
	"commerce-core/tests/common/builder"
	"commerce-core/tests/common/dbtest"
	"commerce-core/tests/common/httptest"
	"commerce-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	cartURL      = "/api/cart"
	cartItemsURL = "/api/cart/items"
	mergeURL     = "/api/cart/merge"
	checkoutURL  = "/api/checkout"
	orderURL     = "/api/orders/%s"
	cancelURL    = "/api/orders/%s/cancel"
	statusURL    = "/api/orders/%s/status"
)

type CheckoutSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CheckoutSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) addItem(token string, productID uuid.UUID, qty int) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
		request.AddItemRequest{ProductID: productID, Quantity: qty}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *CheckoutSuite) checkout(token, key string) *response.OrderResponse {
	t := s.T()
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, checkoutURL, builder.CheckoutRequest(), headers, token)
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, w.Code, w.Body.String())

	var resp response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return &resp
}

func (s *CheckoutSuite) TestCheckoutFlow() {
	s.Run("Normal case: checkout decrements stock and cancel restores it", func() {
		t := s.T()
		productID := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.PriceCents = 2500
			b.Quantity = 10
			b.LowStockThreshold = 8
		}))
		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer)

		s.addItem(token, productID, 3)
		created := s.checkout(token, "")

		require.Equal(t, string(order.StatusPending), created.Status)
		require.Len(t, created.Lines, 1)
		if diff := cmp.Diff(response.OrderLineResponse{
			ProductID:      productID,
			Name:           "Test Product",
			UnitPriceCents: 2500,
			Quantity:       3,
			LineTotalCents: 7500,
		}, created.Lines[0], cmpopts.IgnoreFields(response.OrderLineResponse{}, "Image")); diff != "" {
			t.Errorf("order line mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 7, dbtest.StockOf(t, s.DB, productID))
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.EventOrderConfirmation))
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.EventLowStock))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var cartResp response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cartResp))
		require.Empty(t, cartResp.Items, "cart is cleared after checkout")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID),
			request.CancelOrderRequest{Reason: "changed my mind"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, string(order.StatusCancelled), cancelled.Status)
		require.Equal(t, "changed my mind", cancelled.CancelReason)
		require.NotNil(t, cancelled.CancelledAt)

		require.Equal(t, 10, dbtest.StockOf(t, s.DB, productID))
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.EventOrderCancelled))
	})

	s.Run("Normal case: a replayed idempotency key returns the same order", func() {
		t := s.T()
		productID := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder())
		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer)

		s.addItem(token, productID, 2)
		first := s.checkout(token, "retry-"+uuid.NewString())

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, checkoutURL,
			builder.CheckoutRequest(), map[string]string{"Idempotency-Key": "k-" + first.ID.String()}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "cart is empty after the first checkout")

		key := "k-" + uuid.NewString()
		s.addItem(token, productID, 1)
		second := s.checkout(token, key)
		replayed := s.checkout(token, key)
		require.Equal(t, second.ID, replayed.ID)
		require.Equal(t, second.Number, replayed.Number)
		require.Equal(t, 7, dbtest.StockOf(t, s.DB, productID))
	})

	s.Run("Error case: insufficient stock reports every short line", func() {
		t := s.T()
		productID := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Quantity = 5
		}))
		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer)
		s.addItem(token, productID, 5)

		_, err := s.DB.Exec(t.Context(), "UPDATE products SET quantity = 2 WHERE id = $1", productID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.CheckoutRequest(), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Insufficient stock")
		require.Equal(t, 2, dbtest.StockOf(t, s.DB, productID))
		require.Equal(t, 0, dbtest.CountOutboxEvents(t, s.DB, shared.EventOrderConfirmation))
	})

	s.Run("Error case: checkout requires a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.CheckoutRequest(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := s.jwt.CreateExpiredToken(t, uuid.New(), identity.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.CheckoutRequest(), expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *CheckoutSuite) TestConcurrentCheckoutOfLastUnit() {
	s.Run("Concurrent case: two buyers race for the last unit", func() {
		t := s.T()
		productID := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Name = "Last One"
			b.Quantity = 1
			b.AllowBackorders = false
		}))
		tokens := []string{
			s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer),
			s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer),
		}
		for _, token := range tokens {
			s.addItem(token, productID, 1)
		}

		recorders := make([]*nethttptest.ResponseRecorder, len(tokens))
		var g errgroup.Group
		for i, token := range tokens {
			g.Go(func() error {
				recorders[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.CheckoutRequest(), token)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		statuses := map[int]int{}
		for _, w := range recorders {
			statuses[w.Code]++
		}
		require.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: 1}, statuses)

		for _, w := range recorders {
			if w.Code != http.StatusConflict {
				continue
			}
			body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "Insufficient stock")
			var detail struct {
				Issues []queries.StockIssueView `json:"issues"`
			}
			require.NoError(t, json.Unmarshal(body.Detail, &detail))
			require.Equal(t, []queries.StockIssueView{{
				ProductID: productID,
				Name:      "Last One",
				Requested: 1,
				Available: 0,
			}}, detail.Issues)
		}

		require.Equal(t, 0, dbtest.StockOf(t, s.DB, productID))
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.EventOrderConfirmation))
	})
}

func (s *CheckoutSuite) TestGuestCartMerge() {
	s.Run("Normal case: guest lines fold into the user cart on login", func() {
		t := s.T()
		shirt := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder())
		mug := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Name = "Mug"
			b.PriceCents = 800
		}))
		guest := map[string]string{middleware.GuestSessionHeader: "guest-" + uuid.NewString()}
		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, cartItemsURL,
			request.AddItemRequest{ProductID: shirt, Quantity: 2}, guest, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, cartItemsURL,
			request.AddItemRequest{ProductID: mug, Quantity: 1}, guest, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.addItem(token, shirt, 1)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, mergeURL, nil, guest, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var merged response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &merged))

		got := map[uuid.UUID]int{}
		for _, it := range merged.Items {
			got[it.ProductID] = it.Quantity
		}
		if diff := cmp.Diff(map[uuid.UUID]int{shirt: 3, mug: 1}, got); diff != "" {
			t.Errorf("merged quantities mismatch (-want +got):\n%s", diff)
		}
		require.False(t, merged.IsGuest)
		require.Nil(t, merged.ExpiresAt)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, cartURL, nil, guest, "")
		require.Equal(t, http.StatusOK, w.Code)
		var guestCart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &guestCart))
		require.Empty(t, guestCart.Items, "guest cart is consumed by the merge")
	})
}

func (s *CheckoutSuite) TestOrderStatus() {
	s.Run("Normal case: operator walks an order to delivered", func() {
		t := s.T()
		productID := dbtest.UpsertProduct(t, s.DB, builder.NewProductBuilder())
		customer := s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer)
		operator := s.jwt.GenerateToken(t, uuid.New(), identity.RoleOperator)

		s.addItem(customer, productID, 1)
		created := s.checkout(customer, "")

		tracking := "1Z999AA10123456784"
		for _, step := range []request.UpdateOrderStatusRequest{
			{Status: string(order.StatusConfirmed)},
			{Status: string(order.StatusProcessing)},
			{Status: string(order.StatusShipped), TrackingNumber: &tracking},
			{Status: string(order.StatusDelivered)},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, created.ID), step, operator)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, created.ID), nil, customer)
		require.Equal(t, http.StatusOK, w.Code)
		var got response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, string(order.StatusDelivered), got.Status)
		require.Equal(t, tracking, got.TrackingNumber)
		require.NotNil(t, got.ShippedAt)
		require.NotNil(t, got.DeliveredAt)
		require.Equal(t, 4, dbtest.CountOutboxEvents(t, s.DB, shared.EventOrderStatusChanged))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, customer)
		require.Equal(t, http.StatusConflict, w.Code, "delivered orders cannot be cancelled")
	})

	s.Run("Error case: customers cannot change status", func() {
		t := s.T()
		customer := s.jwt.GenerateToken(t, uuid.New(), identity.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, uuid.New()),
			request.UpdateOrderStatusRequest{Status: string(order.StatusShipped)}, customer)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
