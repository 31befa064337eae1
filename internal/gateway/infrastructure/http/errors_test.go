package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHandleGRPCError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "bad"), expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"bad"}`},
		{name: "already exists", err: status.Error(codes.AlreadyExists, "taken"), expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"taken"}`},
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "nope"), expectedStatus: http.StatusUnauthorized, expectedBody: `{"error":"nope"}`},
		{name: "failed precondition", err: status.Error(codes.FailedPrecondition, "declined"), expectedStatus: http.StatusPaymentRequired, expectedBody: `{"error":"declined"}`},
		{name: "not found", err: status.Error(codes.NotFound, "missing"), expectedStatus: http.StatusNotFound, expectedBody: `{"error":"missing"}`},
		{name: "aborted", err: status.Error(codes.Aborted, "conflict"), expectedStatus: http.StatusConflict, expectedBody: `{"error":"conflict"}`},
		{name: "resource exhausted", err: status.Error(codes.ResourceExhausted, "slow down"), expectedStatus: http.StatusTooManyRequests, expectedBody: `{"error":"too many requests"}`},
		{name: "deadline exceeded", err: status.Error(codes.DeadlineExceeded, "timeout"), expectedStatus: http.StatusServiceUnavailable},
		{name: "internal hides message", err: status.Error(codes.Internal, "sql: secret"), expectedStatus: http.StatusInternalServerError, expectedBody: `{"error":"internal server error"}`},
		{name: "plain error", err: assert.AnError, expectedStatus: http.StatusInternalServerError, expectedBody: `{"error":"internal server error"}`},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleGRPCError(c, discardLogger, tt.err)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, writer.Body.String())
			}
		})
	}
}
