package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ComplaintServiceName is full name of complaint gRPC service
const ComplaintServiceName = "crm.ComplaintService"

// ComplaintServiceServer is the server API for crm.ComplaintService
type ComplaintServiceServer interface {
	Submit(context.Context, *SubmitComplaintRequest) (*SubmitComplaintResponse, error)
	TransitionStatus(context.Context, *TransitionStatusRequest) (*ComplaintResponse, error)
	Assign(context.Context, *AssignRequest) (*ComplaintResponse, error)
	AddNote(context.Context, *AddNoteRequest) (*ComplaintResponse, error)
	GetStatistics(context.Context, *emptypb.Empty) (*StatisticsResponse, error)
}

// UnimplementedComplaintServiceServer must be embedded to have forward compatible implementations
type UnimplementedComplaintServiceServer struct{}

func (UnimplementedComplaintServiceServer) Submit(context.Context, *SubmitComplaintRequest) (*SubmitComplaintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Submit not implemented")
}

func (UnimplementedComplaintServiceServer) TransitionStatus(context.Context, *TransitionStatusRequest) (*ComplaintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionStatus not implemented")
}

func (UnimplementedComplaintServiceServer) Assign(context.Context, *AssignRequest) (*ComplaintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Assign not implemented")
}

func (UnimplementedComplaintServiceServer) AddNote(context.Context, *AddNoteRequest) (*ComplaintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddNote not implemented")
}

func (UnimplementedComplaintServiceServer) GetStatistics(context.Context, *emptypb.Empty) (*StatisticsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatistics not implemented")
}

// RegisterComplaintServiceServer registers srv on s
func RegisterComplaintServiceServer(s grpc.ServiceRegistrar, srv ComplaintServiceServer) {
	s.RegisterService(&ComplaintService_ServiceDesc, srv)
}

func unaryHandler[Req any, Res any](
	method string,
	call func(ComplaintServiceServer, context.Context, *Req) (*Res, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(ComplaintServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ComplaintServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ComplaintServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ComplaintService_ServiceDesc is the grpc.ServiceDesc for crm.ComplaintService
//
//nolint:revive,stylecheck // name follows generated code convention
var ComplaintService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ComplaintServiceName,
	HandlerType: (*ComplaintServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Submit",
			Handler:    unaryHandler("Submit", ComplaintServiceServer.Submit),
		},
		{
			MethodName: "TransitionStatus",
			Handler:    unaryHandler("TransitionStatus", ComplaintServiceServer.TransitionStatus),
		},
		{
			MethodName: "Assign",
			Handler:    unaryHandler("Assign", ComplaintServiceServer.Assign),
		},
		{
			MethodName: "AddNote",
			Handler:    unaryHandler("AddNote", ComplaintServiceServer.AddNote),
		},
		{
			MethodName: "GetStatistics",
			Handler:    unaryHandler("GetStatistics", ComplaintServiceServer.GetStatistics),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "crm/complaint.proto",
}

// ComplaintServiceClient is the client API for crm.ComplaintService
type ComplaintServiceClient interface {
	Submit(ctx context.Context, in *SubmitComplaintRequest, opts ...grpc.CallOption) (*SubmitComplaintResponse, error)
	TransitionStatus(ctx context.Context, in *TransitionStatusRequest, opts ...grpc.CallOption) (*ComplaintResponse, error)
	Assign(ctx context.Context, in *AssignRequest, opts ...grpc.CallOption) (*ComplaintResponse, error)
	AddNote(ctx context.Context, in *AddNoteRequest, opts ...grpc.CallOption) (*ComplaintResponse, error)
	GetStatistics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*StatisticsResponse, error)
}

type complaintServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewComplaintServiceClient builds client which exchanges JSON encoded messages
func NewComplaintServiceClient(cc grpc.ClientConnInterface) ComplaintServiceClient {
	return &complaintServiceClient{cc: cc}
}

func (c *complaintServiceClient) Submit(ctx context.Context, in *SubmitComplaintRequest, opts ...grpc.CallOption) (*SubmitComplaintResponse, error) {
	out := new(SubmitComplaintResponse)
	if err := c.invoke(ctx, "Submit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complaintServiceClient) TransitionStatus(ctx context.Context, in *TransitionStatusRequest, opts ...grpc.CallOption) (*ComplaintResponse, error) {
	out := new(ComplaintResponse)
	if err := c.invoke(ctx, "TransitionStatus", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complaintServiceClient) Assign(ctx context.Context, in *AssignRequest, opts ...grpc.CallOption) (*ComplaintResponse, error) {
	out := new(ComplaintResponse)
	if err := c.invoke(ctx, "Assign", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complaintServiceClient) AddNote(ctx context.Context, in *AddNoteRequest, opts ...grpc.CallOption) (*ComplaintResponse, error) {
	out := new(ComplaintResponse)
	if err := c.invoke(ctx, "AddNote", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complaintServiceClient) GetStatistics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*StatisticsResponse, error) {
	out := new(StatisticsResponse)
	if err := c.invoke(ctx, "GetStatistics", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complaintServiceClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ComplaintServiceName+"/"+method, in, out, opts...)
}
