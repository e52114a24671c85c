package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// requestIDInterceptor stores the caller's request id in the context,
// generating one when the caller sent none, and echoes it in the header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		id, err := common.MakeRandHexString(8)
		if err == nil {
			requestID = id
		}
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.metrics.ObserveRequest("grpc", info.FullMethod, code.String(), start)
	s.logger.Info(ctx, "grpc request",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
		"request_id", requestIDFromContext(ctx),
	)

	return resp, err
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
