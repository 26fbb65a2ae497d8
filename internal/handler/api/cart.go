package api

import (
	"net/http"

	"commerce-core/internal/domain/cart"
	reqdto "commerce-core/internal/handler/dto/request"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/handler/httperr"
	"commerce-core/internal/handler/middleware"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get or create the cart of the current user or guest session
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	view, err := h.q.Get(ctx, owner)
	if errs.Is(err, shared.ErrCartNotFound) {
		view, err = h.cmds.GetOrCreate(ctx, owner)
	}
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add item
// @Description Add a product, optionally with a variant, to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddItem(c.Request.Context(), owner, req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Update item quantity
// @Description Set the quantity of a cart line; zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateQuantityRequest true "Update quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateQuantity(c.Request.Context(), owner, productID, *req.Quantity, req.VariantSignature)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove item
// @Description Remove a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Param productId path string true "Product ID"
// @Param variant query string false "Variant signature"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	view, err := h.cmds.RemoveItem(c.Request.Context(), owner, productID, c.Query("variant"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Apply coupon
// @Description Attach a coupon to the cart, replacing any existing one
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Param request body reqdto.CouponRequest true "Coupon request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ApplyCoupon(c.Request.Context(), owner, req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove coupon
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/coupon [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	view, err := h.cmds.RemoveCoupon(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set shipping method
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Param request body reqdto.ShippingMethodRequest true "Shipping method request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/shipping [put]
func (h *CartHandler) SetShippingMethod(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	var req reqdto.ShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetShippingMethod(c.Request.Context(), owner, req.Method)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Description Remove all lines and the coupon
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	view, err := h.cmds.Clear(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Validate stock
// @Description Check every cart line against current inventory
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string false "Guest session id"
// @Success 200 {object} resdto.StockValidationResponse
// @Failure 404 {object} httperr.Response
// @Router /cart/validate [get]
func (h *CartHandler) ValidateStock(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		return
	}
	view, err := h.q.ValidateStock(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockValidationView(view))
}

// @Summary Merge guest cart
// @Description Fold the guest session cart into the signed-in user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param X-Guest-Session header string true "Guest session id"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /cart/merge [post]
func (h *CartHandler) Merge(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	session := c.GetHeader(middleware.GuestSessionHeader)
	if session == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing guest session"), "Guest session required", nil)
		return
	}
	view, err := h.cmds.Merge(c.Request.Context(), userID, session)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func cartOwner(c *gin.Context) (cart.Owner, bool) {
	owner, err := middleware.CartOwner(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest session or login required", nil)
		return cart.Owner{}, false
	}
	return owner, true
}

func productIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return uuid.Nil, false
	}
	return id, true
}
