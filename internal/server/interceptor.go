package server

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/examtrack/exam-analyzer/internal/common"
)

const requestIDHeader = "x-request-id"

// RequestIDUnaryInterceptor stamps every call with a request ID, taken from
// the incoming x-request-id header when the caller supplied one. The audit
// sink and handler logs read it back from the context.
func RequestIDUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(requestIDHeader); len(vals) > 0 {
				requestID = vals[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}
		return handler(common.WithRequestID(ctx, requestID), req)
	}
}
