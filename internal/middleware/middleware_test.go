package middleware

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryRequestIDInterceptorGeneratesID(t *testing.T) {
	interceptor := UnaryRequestIDInterceptor()

	var capturedCtx context.Context
	mockHandler := func(ctx context.Context, req interface{}) (interface{}, error) {
		capturedCtx = ctx
		return "response", nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: "/modelrunner.ModelRunner/Infer"}
	_, err := interceptor(context.Background(), nil, info, mockHandler)
	if err != nil {
		t.Fatalf("Interceptor failed: %v", err)
	}

	requestID := GetRequestID(capturedCtx)
	if requestID == "" {
		t.Error("Expected request ID to be generated, got empty string")
	}
	if len(requestID) != 36 {
		t.Errorf("Expected UUID format (36 chars), got %d chars: %s", len(requestID), requestID)
	}
}

func TestUnaryRequestIDInterceptorPreservesExistingID(t *testing.T) {
	interceptor := UnaryRequestIDInterceptor()

	existingID := "test-request-id-12345"

	var capturedCtx context.Context
	mockHandler := func(ctx context.Context, req interface{}) (interface{}, error) {
		capturedCtx = ctx
		return "response", nil
	}

	md := metadata.Pairs(RequestIDHeader, existingID)
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/modelrunner.ModelRunner/Infer"}

	if _, err := interceptor(ctx, nil, info, mockHandler); err != nil {
		t.Fatalf("Interceptor failed: %v", err)
	}

	if got := GetRequestID(capturedCtx); got != existingID {
		t.Errorf("Expected request ID %s, got %s", existingID, got)
	}
}

func TestGetRequestIDEmptyContext(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("Expected empty request ID from empty context, got %s", id)
	}
}

func TestUnaryMetricsInterceptorPassesThrough(t *testing.T) {
	interceptor := UnaryMetricsInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/modelrunner.ModelRunner/Infer"}

	resp, err := interceptor(context.Background(), nil, info,
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return "ok", nil
		})
	if err != nil {
		t.Fatalf("Interceptor failed: %v", err)
	}
	if resp != "ok" {
		t.Errorf("Expected handler response to pass through, got %v", resp)
	}

	// Errors pass through untouched, status or not.
	wantErr := status.Error(codes.InvalidArgument, "bad tensor")
	_, err = interceptor(context.Background(), nil, info,
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, wantErr
		})
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected handler error to pass through, got %v", err)
	}
}
