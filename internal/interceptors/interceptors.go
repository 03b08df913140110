package interceptors

import (
	"strings"

	"google.golang.org/grpc"
)

// UnaryInterceptorApplicable decides whether interceptor must run for the call
type UnaryInterceptorApplicable func(*grpc.UnaryServerInfo) bool

func isUnaryInterceptorApplicable(info *grpc.UnaryServerInfo, fns ...UnaryInterceptorApplicable) bool {
	if len(fns) == 0 {
		return true
	}

	for _, fn := range fns {
		if !fn(info) {
			return false
		}
	}
	return true
}

// UnaryApplicableForService limits interceptor to methods of service svc
func UnaryApplicableForService(svc string) UnaryInterceptorApplicable {
	return func(info *grpc.UnaryServerInfo) bool {
		// FullMethod is the full RPC method string, i.e., /package.service/method.
		return strings.Contains(info.FullMethod, svc)
	}
}

// UnaryNotApplicableForMethods skips interceptor for listed full method names
func UnaryNotApplicableForMethods(methods ...string) UnaryInterceptorApplicable {
	return func(info *grpc.UnaryServerInfo) bool {
		for _, m := range methods {
			if info.FullMethod == m {
				return false
			}
		}
		return true
	}
}
