//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/identity"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/handler/api"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"
	"commerce-core/tests/common/httptest"
	"commerce-core/tests/common/testutil"
	commandsmock "commerce-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	h := api.NewCheckoutHandler(s.mockCommands)

	s.userID = uuid.New()
	s.router.POST("/checkout", fakeAuth(s.userID, identity.RoleCustomer, true), h.Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/checkout"
	reqBody := builder.CheckoutRequest()
	view := builder.OrderView(order.StatusPending)

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any(), "key-1").
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CheckoutInput, _ string) (*commands.CheckoutResult, error) {
				s.Equal("1 Market Street", in.ShippingAddress.Line1)
				s.Equal("US", in.ShippingAddress.Country)
				s.Nil(in.BillingAddress)
				s.Equal(order.PaymentAuthorized, in.Payment.Status)
				s.Equal("standard", in.ShippingMethod)
				return &commands.CheckoutResult{Order: view}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "key-1"}, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Len(body.Lines, 2)
		s.Equal(int64(3839), body.TotalCents)
		s.Equal("Springfield", body.ShippingAddress.City)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/" + view.ID.String()})
	})

	s.Run("success: replay returns 200 OK", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any(), "key-1").
			Return(&commands.CheckoutResult{Order: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "key-1"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: billing address and coupon are mapped", func() {
		req := builder.CheckoutRequest()
		billing := req.ShippingAddress
		billing.Line1 = "9 Billing Road"
		req.BillingAddress = &billing
		req.Payment.Status = ""

		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any(), "").
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CheckoutInput, _ string) (*commands.CheckoutResult, error) {
				s.Require().NotNil(in.BillingAddress)
				s.Equal("9 Billing Road", in.BillingAddress.Line1)
				s.Equal(order.PaymentPending, in.Payment.Status)
				return &commands.CheckoutResult{Order: view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing shipping address", mutate: testutil.Field("shipping_address", nil)},
			{name: "country must be two letters", mutate: func(m map[string]any) {
				m["shipping_address"].(map[string]any)["country"] = "USA"
			}},
			{name: "missing payment method", mutate: func(m map[string]any) {
				delete(m["payment"].(map[string]any), "method")
			}},
			{name: "unknown shipping method", mutate: testutil.Field("shipping_method", "teleport")},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("n", 1001))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 for an oversized idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": strings.Repeat("k", 129)}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key header")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		issue := cart.StockIssue{ProductID: uuid.New(), Name: "Mug", Requested: 2, Available: 0}
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "empty cart", commandsError: errs.Mark(errors.New("no lines"), shared.ErrEmptyCart),
				expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Cart is empty"},
			{name: "stock shortfall", commandsError: shared.NewStockError([]cart.StockIssue{issue}),
				expectedStatus: http.StatusConflict, expectedMsg: "Insufficient stock"},
			{name: "key reused with another payload", commandsError: errs.Mark(errors.New("mismatch"), shared.ErrConflict),
				expectedStatus: http.StatusConflict, expectedMsg: "Conflict"},
			{name: "internal error", commandsError: errors.New("tx aborted"),
				expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any(), "").Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: stock conflict lists the short lines", func() {
		productID := uuid.New()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any(), "").
			Return(nil, shared.SingleStockIssue(productID, "Mug", 5, 2)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
		var body struct {
			Detail struct {
				Issues []struct {
					ProductID uuid.UUID `json:"product_id"`
					Requested int       `json:"requested"`
					Available int       `json:"available"`
				} `json:"issues"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Require().Len(body.Detail.Issues, 1)
		s.Equal(productID, body.Detail.Issues[0].ProductID)
		s.Equal(5, body.Detail.Issues[0].Requested)
		s.Equal(2, body.Detail.Issues[0].Available)
	})
}
