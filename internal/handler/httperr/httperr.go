package httperr

import (
	"net/http"

	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StockDetail is the body detail of an insufficient-stock response.
type StockDetail struct {
	Issues []queries.StockIssueView `json:"issues"`
}

// AbortWithUsecaseError maps the usecase error taxonomy onto HTTP statuses.
func AbortWithUsecaseError(c *gin.Context, err error) {
	var stockErr *shared.StockError
	switch {
	case errs.As(err, &stockErr):
		AbortWithError(c, http.StatusConflict, err, "Insufficient stock",
			StockDetail{Issues: queries.NewStockIssueViews(stockErr.Issues)})
	case errs.Is(err, shared.ErrInsufficientStock):
		AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
	case errs.Is(err, shared.ErrCartNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
	case errs.Is(err, shared.ErrOrderNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, shared.ErrProductNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errs.Is(err, shared.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, shared.ErrEmptyCart):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty", nil)
	case errs.Is(err, shared.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
	case errs.Is(err, shared.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, shared.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, "Conflict", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// validationMessage exposes the innermost rule message, never wrapped context.
func validationMessage(err error) string {
	if cause := errs.UnwrapAll(err); cause != nil {
		return cause.Error()
	}
	return "Validation failed"
}
