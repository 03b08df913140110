package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type validator interface {
	Validate(any) error
}

// ValidatorUnaryInterceptor validates request according to its validate tags
func ValidatorUnaryInterceptor(v validator, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		if err := v.Validate(req); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		return h(ctx, req)
	}
}
