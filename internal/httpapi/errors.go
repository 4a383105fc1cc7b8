package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	billingapp "github.com/dwikikusuma/vendor-dashboard/internal/billing/app"
	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	cartapp "github.com/dwikikusuma/vendor-dashboard/internal/cart/app"
	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/vendor-dashboard/internal/checkout/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	returnsapp "github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	supportapp "github.com/dwikikusuma/vendor-dashboard/internal/support/app"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errBadRequest = errors.New("malformed request")

// mapErr classifies a core error as a gRPC status so the HTTP and ops
// surfaces share one taxonomy.
func mapErr(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidPricingMode),
		errors.Is(err, billing.ErrInvalidEntry),
		errors.Is(err, billing.ErrInvalidPayment),
		errors.Is(err, calc.ErrEvaluation),
		errors.Is(err, orderapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrOverpayment),
		errors.Is(err, returnsapp.ErrNoItems),
		errors.Is(err, returnsapp.ErrInvalidQuantity),
		errors.Is(err, supportapp.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, cartapp.ErrProductNotFound),
		errors.Is(err, orderapp.ErrNotFound),
		errors.Is(err, returnsapp.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, billingapp.ErrNothingToCommit),
		errors.Is(err, orderapp.ErrInvalidTransition),
		errors.Is(err, returnsapp.ErrNotEligible),
		errors.Is(err, returnsapp.ErrInvalidTransition),
		errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, checkoutapp.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.FailedPrecondition:
		return http.StatusConflict, "FAILED_PRECONDITION", st.Message()
	case codes.Unauthenticated:
		return http.StatusUnauthorized, "UNAUTHENTICATED", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", st.Message()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func writeError(c *gin.Context, lang i18n.Language, err error) {
	httpStatus, code, detail := httpStatusFromGRPC(mapErr(err))
	if httpStatus == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", slog.Any("err", err), slog.String("path", c.FullPath()))
		detail = ""
	}
	c.AbortWithStatusJSON(httpStatus, gin.H{"error": errorBody{
		Code:    code,
		Message: errorMessage(lang, err),
		Detail:  detail,
	}})
}
