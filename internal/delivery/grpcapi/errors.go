package grpcapi

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusFromError translates the settlement error taxonomy into gRPC status
// codes for the delivery layer. Unexpected errors are logged with a
// correlation id and returned without internal detail.
func StatusFromError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrStateConflict),
		errors.Is(err, domain.ErrReuploadWindowExpired),
		errors.Is(err, domain.ErrEscrowNotHeld):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrExternalRail):
		return status.Error(codes.Unavailable, err.Error())
	default:
		correlationID := uuid.New().String()
		slog.Error("unexpected settlement error",
			"correlation_id", correlationID, "error", err)
		return status.Error(codes.Internal,
			fmt.Sprintf("internal error (correlation id %s)", correlationID))
	}
}
