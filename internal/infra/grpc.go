package infra

import (
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/handlers"
	"github.com/umalmyha/crm/internal/interceptors"
	"github.com/umalmyha/crm/internal/service"
	"github.com/umalmyha/crm/proto"
	"google.golang.org/grpc"
)

const complaintSubmitMethod = "/" + proto.ComplaintServiceName + "/Submit"

// GrpcServer builds gRPC server exposing complaint service, every method except submission requires access token
func GrpcServer(svcs *Services, validator service.Validator, logger logrus.FieldLogger) *grpc.Server {
	complaintSvcApplicable := interceptors.UnaryApplicableForService(proto.ComplaintServiceName)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.ErrorUnaryInterceptor(logger),
		interceptors.AuthUnaryInterceptor(
			svcs.JwtValidator,
			complaintSvcApplicable,
			interceptors.UnaryNotApplicableForMethods(complaintSubmitMethod),
		),
		interceptors.ValidatorUnaryInterceptor(validator, complaintSvcApplicable),
	))

	proto.RegisterComplaintServiceServer(srv, handlers.NewComplaintGrpcHandler(svcs.Complaint))
	return srv
}
