package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func httpToGrpcCode(s int) codes.Code {
	switch s {
	case http.StatusBadRequest:
		return codes.FailedPrecondition
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func grpcCode(err error) codes.Code {
	var pldErr *validation.PayloadError
	var trErr *apperrors.InvalidStatusTransitionErr
	var refErr *apperrors.ReferenceExhaustedErr
	var notFoundErr *apperrors.EntryNotFoundErr
	var bsnErr *apperrors.BusinessErr
	var modErr *apperrors.ConcurrentModificationErr
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &pldErr):
		return codes.InvalidArgument
	case errors.As(err, &trErr):
		return codes.FailedPrecondition
	case errors.As(err, &refErr):
		return codes.Unavailable
	case errors.As(err, &notFoundErr):
		return codes.NotFound
	case errors.As(err, &bsnErr):
		return codes.FailedPrecondition
	case errors.As(err, &modErr):
		return codes.Aborted
	case errors.As(err, &echoErr):
		return httpToGrpcCode(echoErr.Code)
	default:
		return codes.Internal
	}
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(logger logrus.FieldLogger, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			return nil, err
		}

		code := grpcCode(err)
		if code == codes.Internal {
			logger.WithError(err).WithField("method", info.FullMethod).Error("error occurred on grpc request processing")
			return nil, status.Error(code, "Internal server error")
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if m, ok := echoErr.Message.(string); ok {
				return nil, status.Error(code, m)
			}
		}
		return nil, status.Error(code, err.Error())
	}
}
