package checksvc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// CheckServiceServer is the interface a gRPC server implementation
// satisfies, in lieu of a protoc-generated one.
type CheckServiceServer interface {
	CheckFile(ctx context.Context, req *CheckRequest) (*CheckResponse, error)
}

// ServiceName is checksvc.proto's fully qualified service name.
const ServiceName = "lumenc.checksvc.CheckService"

// ServiceDesc is hand-written in place of the grpc.ServiceDesc
// protoc-gen-go-grpc would otherwise generate from checksvc.proto —
// grounded on the teacher's internal/evaluator/builtins_grpc.go, which
// builds one the same way around a dynamic protoreflect descriptor.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckFile",
			Handler:    checkFileHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checksvc.proto",
}

func checkFileHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	impl, ok := srv.(CheckServiceServer)
	if !ok {
		return nil, fmt.Errorf("checksvc: handler registered with the wrong implementation type")
	}

	run := func(ctx context.Context, req any) (any, error) {
		wireReq, ok := req.(*structpb.Struct)
		if !ok {
			return nil, fmt.Errorf("checksvc: unexpected request type %T", req)
		}
		server, ok := impl.(*Server)
		if !ok {
			return nil, fmt.Errorf("checksvc: CheckFile requires a *checksvc.Server implementation")
		}
		checkReq, err := requestFromStruct(wireReq, server.Decode)
		if err != nil {
			return nil, err
		}
		resp, err := impl.CheckFile(ctx, checkReq)
		if err != nil {
			return nil, err
		}
		return responseToStruct(resp)
	}
	if interceptor == nil {
		return run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/CheckFile"}
	return interceptor(ctx, in, info, run)
}

// RegisterCheckServiceServer wires impl into s, the same call shape
// protoc-gen-go-grpc's generated RegisterXServer function would have.
func RegisterCheckServiceServer(s *grpc.Server, impl CheckServiceServer) {
	s.RegisterService(&ServiceDesc, impl)
}
