// internal/handler/errors.go
package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sessiond/internal/session"
)

// grpcError maps session failure kinds to gRPC status errors. The session
// wraps every failure with one of its sentinels, so errors.Is is enough.
func grpcError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, session.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%v", err)

	case errors.Is(err, session.ErrNotLoaded):
		return status.Errorf(codes.FailedPrecondition, "%v", err)

	case errors.Is(err, session.ErrLoadFailed):
		return status.Errorf(codes.FailedPrecondition, "%v", err)

	case errors.Is(err, session.ErrInferenceFailed):
		return status.Errorf(codes.Internal, "%v", err)

	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

// invalidArgumentError creates an InvalidArgument gRPC error
func invalidArgumentError(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// failedPreconditionError creates a FailedPrecondition gRPC error
func failedPreconditionError(format string, args ...interface{}) error {
	return status.Errorf(codes.FailedPrecondition, format, args...)
}
