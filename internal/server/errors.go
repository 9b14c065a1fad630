package server

import (
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/jobs"
	"github.com/optipix/imagesync/internal/ledger"
)

// rpcError translates service errors into gRPC statuses. Anything not
// recognized is logged and reported as Internal without the cause.
func rpcError(logger *slog.Logger, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, jobs.ErrNoItems),
		errors.Is(err, jobs.ErrTooManyItems),
		errors.Is(err, jobs.ErrBadPreset),
		errors.Is(err, ledger.ErrInvalidAmount):
		return common.InvalidArgumentError(err.Error())
	}
	var transition *jobs.InvalidTransitionError
	if errors.As(err, &transition) {
		return common.FailedPreconditionError(transition.Error())
	}
	logger.Warn("rpc failed", "op", op, "error", err)
	return common.InternalError(op + " failed")
}
