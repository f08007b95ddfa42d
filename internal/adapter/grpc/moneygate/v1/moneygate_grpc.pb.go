// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: moneygate/v1/moneygate.proto

package moneygatev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	MoneyGateService_ApplyRemittance_FullMethodName   = "/moneygate.v1.MoneyGateService/ApplyRemittance"
	MoneyGateService_PreviewAllocation_FullMethodName = "/moneygate.v1.MoneyGateService/PreviewAllocation"
	MoneyGateService_CloseGate_FullMethodName         = "/moneygate.v1.MoneyGateService/CloseGate"
	MoneyGateService_OpenGate_FullMethodName          = "/moneygate.v1.MoneyGateService/OpenGate"
	MoneyGateService_SetGateOpensAt_FullMethodName    = "/moneygate.v1.MoneyGateService/SetGateOpensAt"
	MoneyGateService_GetGate_FullMethodName           = "/moneygate.v1.MoneyGateService/GetGate"
	MoneyGateService_ListGates_FullMethodName         = "/moneygate.v1.MoneyGateService/ListGates"
)

// MoneyGateServiceClient is the client API for MoneyGateService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MoneyGateServiceClient interface {
	// ApplyRemittance runs one admission decision for a remittance request.
	ApplyRemittance(ctx context.Context, in *ApplyRemittanceRequest, opts ...grpc.CallOption) (*ApplyRemittanceResponse, error)
	// PreviewAllocation splits a bank line's available funds across accounts
	// under a policy ruleset, without persisting anything.
	PreviewAllocation(ctx context.Context, in *PreviewAllocationRequest, opts ...grpc.CallOption) (*PreviewAllocationResponse, error)
	// CloseGate closes a gate manually.
	CloseGate(ctx context.Context, in *CloseGateRequest, opts ...grpc.CallOption) (*GateResponse, error)
	// OpenGate opens a gate manually.
	OpenGate(ctx context.Context, in *OpenGateRequest, opts ...grpc.CallOption) (*GateResponse, error)
	// SetGateOpensAt adjusts a gate's scheduled reopen time.
	SetGateOpensAt(ctx context.Context, in *SetGateOpensAtRequest, opts ...grpc.CallOption) (*GateResponse, error)
	// GetGate returns the current state of one gate.
	GetGate(ctx context.Context, in *GetGateRequest, opts ...grpc.CallOption) (*GateResponse, error)
	// ListGates returns every known gate.
	ListGates(ctx context.Context, in *ListGatesRequest, opts ...grpc.CallOption) (*ListGatesResponse, error)
}

type moneyGateServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMoneyGateServiceClient(cc grpc.ClientConnInterface) MoneyGateServiceClient {
	return &moneyGateServiceClient{cc}
}

func (c *moneyGateServiceClient) ApplyRemittance(ctx context.Context, in *ApplyRemittanceRequest, opts ...grpc.CallOption) (*ApplyRemittanceResponse, error) {
	out := new(ApplyRemittanceResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_ApplyRemittance_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneyGateServiceClient) PreviewAllocation(ctx context.Context, in *PreviewAllocationRequest, opts ...grpc.CallOption) (*PreviewAllocationResponse, error) {
	out := new(PreviewAllocationResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_PreviewAllocation_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneyGateServiceClient) CloseGate(ctx context.Context, in *CloseGateRequest, opts ...grpc.CallOption) (*GateResponse, error) {
	out := new(GateResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_CloseGate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneyGateServiceClient) OpenGate(ctx context.Context, in *OpenGateRequest, opts ...grpc.CallOption) (*GateResponse, error) {
	out := new(GateResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_OpenGate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneyGateServiceClient) SetGateOpensAt(ctx context.Context, in *SetGateOpensAtRequest, opts ...grpc.CallOption) (*GateResponse, error) {
	out := new(GateResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_SetGateOpensAt_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneyGateServiceClient) GetGate(ctx context.Context, in *GetGateRequest, opts ...grpc.CallOption) (*GateResponse, error) {
	out := new(GateResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_GetGate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneyGateServiceClient) ListGates(ctx context.Context, in *ListGatesRequest, opts ...grpc.CallOption) (*ListGatesResponse, error) {
	out := new(ListGatesResponse)
	err := c.cc.Invoke(ctx, MoneyGateService_ListGates_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MoneyGateServiceServer is the server API for MoneyGateService service.
// All implementations must embed UnimplementedMoneyGateServiceServer
// for forward compatibility
type MoneyGateServiceServer interface {
	// ApplyRemittance runs one admission decision for a remittance request.
	ApplyRemittance(context.Context, *ApplyRemittanceRequest) (*ApplyRemittanceResponse, error)
	// PreviewAllocation splits a bank line's available funds across accounts
	// under a policy ruleset, without persisting anything.
	PreviewAllocation(context.Context, *PreviewAllocationRequest) (*PreviewAllocationResponse, error)
	// CloseGate closes a gate manually.
	CloseGate(context.Context, *CloseGateRequest) (*GateResponse, error)
	// OpenGate opens a gate manually.
	OpenGate(context.Context, *OpenGateRequest) (*GateResponse, error)
	// SetGateOpensAt adjusts a gate's scheduled reopen time.
	SetGateOpensAt(context.Context, *SetGateOpensAtRequest) (*GateResponse, error)
	// GetGate returns the current state of one gate.
	GetGate(context.Context, *GetGateRequest) (*GateResponse, error)
	// ListGates returns every known gate.
	ListGates(context.Context, *ListGatesRequest) (*ListGatesResponse, error)
	mustEmbedUnimplementedMoneyGateServiceServer()
}

// UnimplementedMoneyGateServiceServer must be embedded to have forward compatible implementations.
type UnimplementedMoneyGateServiceServer struct {
}

func (UnimplementedMoneyGateServiceServer) ApplyRemittance(context.Context, *ApplyRemittanceRequest) (*ApplyRemittanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyRemittance not implemented")
}
func (UnimplementedMoneyGateServiceServer) PreviewAllocation(context.Context, *PreviewAllocationRequest) (*PreviewAllocationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewAllocation not implemented")
}
func (UnimplementedMoneyGateServiceServer) CloseGate(context.Context, *CloseGateRequest) (*GateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseGate not implemented")
}
func (UnimplementedMoneyGateServiceServer) OpenGate(context.Context, *OpenGateRequest) (*GateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenGate not implemented")
}
func (UnimplementedMoneyGateServiceServer) SetGateOpensAt(context.Context, *SetGateOpensAtRequest) (*GateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetGateOpensAt not implemented")
}
func (UnimplementedMoneyGateServiceServer) GetGate(context.Context, *GetGateRequest) (*GateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGate not implemented")
}
func (UnimplementedMoneyGateServiceServer) ListGates(context.Context, *ListGatesRequest) (*ListGatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGates not implemented")
}
func (UnimplementedMoneyGateServiceServer) mustEmbedUnimplementedMoneyGateServiceServer() {}

// UnsafeMoneyGateServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MoneyGateServiceServer will
// result in compilation errors.
type UnsafeMoneyGateServiceServer interface {
	mustEmbedUnimplementedMoneyGateServiceServer()
}

func RegisterMoneyGateServiceServer(s grpc.ServiceRegistrar, srv MoneyGateServiceServer) {
	s.RegisterService(&MoneyGateService_ServiceDesc, srv)
}

func _MoneyGateService_ApplyRemittance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyRemittanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).ApplyRemittance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_ApplyRemittance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).ApplyRemittance(ctx, req.(*ApplyRemittanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneyGateService_PreviewAllocation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewAllocationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).PreviewAllocation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_PreviewAllocation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).PreviewAllocation(ctx, req.(*PreviewAllocationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneyGateService_CloseGate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseGateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).CloseGate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_CloseGate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).CloseGate(ctx, req.(*CloseGateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneyGateService_OpenGate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenGateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).OpenGate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_OpenGate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).OpenGate(ctx, req.(*OpenGateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneyGateService_SetGateOpensAt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetGateOpensAtRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).SetGateOpensAt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_SetGateOpensAt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).SetGateOpensAt(ctx, req.(*SetGateOpensAtRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneyGateService_GetGate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).GetGate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_GetGate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).GetGate(ctx, req.(*GetGateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneyGateService_ListGates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneyGateServiceServer).ListGates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneyGateService_ListGates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneyGateServiceServer).ListGates(ctx, req.(*ListGatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MoneyGateService_ServiceDesc is the grpc.ServiceDesc for MoneyGateService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MoneyGateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "moneygate.v1.MoneyGateService",
	HandlerType: (*MoneyGateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ApplyRemittance",
			Handler:    _MoneyGateService_ApplyRemittance_Handler,
		},
		{
			MethodName: "PreviewAllocation",
			Handler:    _MoneyGateService_PreviewAllocation_Handler,
		},
		{
			MethodName: "CloseGate",
			Handler:    _MoneyGateService_CloseGate_Handler,
		},
		{
			MethodName: "OpenGate",
			Handler:    _MoneyGateService_OpenGate_Handler,
		},
		{
			MethodName: "SetGateOpensAt",
			Handler:    _MoneyGateService_SetGateOpensAt_Handler,
		},
		{
			MethodName: "GetGate",
			Handler:    _MoneyGateService_GetGate_Handler,
		},
		{
			MethodName: "ListGates",
			Handler:    _MoneyGateService_ListGates_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moneygate/v1/moneygate.proto",
}
