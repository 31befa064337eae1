package http

import (
	"net/http"

	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorKey = "error"

	internalErrorMessage = "internal server error"
)

func abortWithError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{errorKey: msg})
}

// handleGRPCError translates a service status into an HTTP response. Messages of
// internal failures are logged and never forwarded.
func handleGRPCError(c *gin.Context, logger logging.Logger, err error) {
	st, ok := status.FromError(err)
	if !ok {
		logger.Error("unexpected service error", "path", c.FullPath(), "error", err.Error())
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	switch st.Code() {
	case codes.InvalidArgument, codes.AlreadyExists:
		abortWithError(c, http.StatusBadRequest, st.Message())
	case codes.Unauthenticated:
		abortWithError(c, http.StatusUnauthorized, st.Message())
	case codes.FailedPrecondition:
		abortWithError(c, http.StatusPaymentRequired, st.Message())
	case codes.NotFound:
		abortWithError(c, http.StatusNotFound, st.Message())
	case codes.Aborted:
		abortWithError(c, http.StatusConflict, st.Message())
	case codes.ResourceExhausted:
		abortWithError(c, http.StatusTooManyRequests, "too many requests")
	case codes.Unavailable, codes.DeadlineExceeded:
		logger.Warn("upstream service unavailable", "path", c.FullPath(), "error", err.Error())
		abortWithError(c, http.StatusServiceUnavailable, "service temporarily unavailable, try again later")
	default:
		logger.Error("service call failed", "path", c.FullPath(), "error", err.Error())
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}
