package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/optipix/imagesync/internal/common"
)

// RequestIDInterceptor tags every call with a request id and logs the
// method, outcome, and elapsed time.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc",
				"method", info.FullMethod,
				"request_id", requestID,
				"code", status.Code(err).String(),
				"elapsed_ms", elapsed.Milliseconds(),
			)
			return resp, err
		}
		logger.Info("rpc",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return resp, nil
	}
}
