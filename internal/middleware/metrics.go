// internal/middleware/metrics.go
package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"sessiond/internal/metrics"
)

// UnaryMetricsInterceptor records a latency histogram observation for every
// unary call, labeled with the full method name and the resulting status
// code.
func UnaryMetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		code := "OK"
		if err != nil {
			if st, ok := status.FromError(err); ok {
				code = st.Code().String()
			} else {
				code = "Unknown"
			}
		}
		metrics.RecordGRPCLatency(info.FullMethod, code, time.Since(start).Seconds())

		return resp, err
	}
}
