package infra

import (
	"errors"
	"log/slog"

	"event-sync-service/internal/pkg/errs"
)

type ErrorKind string

type InfraError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e InfraError) Error() string {
	if e.err != nil {
		// err already carries msg
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e InfraError) Unwrap() error {
	return e.err
}

// WrapErr logs the failure and wraps it with a kind callers can branch on.
// Not-found results are expected and logged at debug level only.
func WrapErr(logger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		logger.Debug("Infra miss: "+msg, logArgs...)
	} else {
		logger.Error("Infra error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return InfraError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e InfraError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindStoreFailure  ErrorKind = "STORE_FAILURE"
	KindRemoteFailure ErrorKind = "REMOTE_FAILURE"
	KindSinkFailure   ErrorKind = "SINK_FAILURE"
)
