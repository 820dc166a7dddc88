// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: claims/v1/claims.proto

package claimspb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ClaimsService_CreateClaim_FullMethodName       = "/claims.v1.ClaimsService/CreateClaim"
	ClaimsService_GetClaim_FullMethodName          = "/claims.v1.ClaimsService/GetClaim"
	ClaimsService_ListClaims_FullMethodName        = "/claims.v1.ClaimsService/ListClaims"
	ClaimsService_UpdateClaimStatus_FullMethodName = "/claims.v1.ClaimsService/UpdateClaimStatus"
	ClaimsService_ProcessDocuments_FullMethodName  = "/claims.v1.ClaimsService/ProcessDocuments"
	ClaimsService_ReanalyzeClaim_FullMethodName    = "/claims.v1.ClaimsService/ReanalyzeClaim"
	ClaimsService_ListInvoices_FullMethodName      = "/claims.v1.ClaimsService/ListInvoices"
	ClaimsService_GetInvoice_FullMethodName        = "/claims.v1.ClaimsService/GetInvoice"
	ClaimsService_ExportClaim_FullMethodName       = "/claims.v1.ClaimsService/ExportClaim"
)

// ClaimsServiceClient is the client API for ClaimsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ClaimsServiceClient interface {
	CreateClaim(ctx context.Context, in *CreateClaimRequest, opts ...grpc.CallOption) (*CreateClaimResponse, error)
	GetClaim(ctx context.Context, in *GetClaimRequest, opts ...grpc.CallOption) (*GetClaimResponse, error)
	ListClaims(ctx context.Context, in *ListClaimsRequest, opts ...grpc.CallOption) (*ListClaimsResponse, error)
	UpdateClaimStatus(ctx context.Context, in *UpdateClaimStatusRequest, opts ...grpc.CallOption) (*UpdateClaimStatusResponse, error)
	// ProcessDocuments uploads invoice and evidence files for a claim, runs
	// OCR, validation and coverage on each invoice, and optionally runs the
	// adjuster analysis over the whole claim.
	ProcessDocuments(ctx context.Context, in *ProcessDocumentsRequest, opts ...grpc.CallOption) (*ProcessDocumentsResponse, error)
	// ReanalyzeClaim reruns the adjuster analysis from already extracted
	// invoice data without repeating OCR.
	ReanalyzeClaim(ctx context.Context, in *ReanalyzeClaimRequest, opts ...grpc.CallOption) (*ReanalyzeClaimResponse, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error)
	ExportClaim(ctx context.Context, in *ExportClaimRequest, opts ...grpc.CallOption) (*ExportClaimResponse, error)
}

type claimsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClaimsServiceClient(cc grpc.ClientConnInterface) ClaimsServiceClient {
	return &claimsServiceClient{cc}
}

func (c *claimsServiceClient) CreateClaim(ctx context.Context, in *CreateClaimRequest, opts ...grpc.CallOption) (*CreateClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateClaimResponse)
	err := c.cc.Invoke(ctx, ClaimsService_CreateClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) GetClaim(ctx context.Context, in *GetClaimRequest, opts ...grpc.CallOption) (*GetClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetClaimResponse)
	err := c.cc.Invoke(ctx, ClaimsService_GetClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ListClaims(ctx context.Context, in *ListClaimsRequest, opts ...grpc.CallOption) (*ListClaimsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListClaimsResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ListClaims_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) UpdateClaimStatus(ctx context.Context, in *UpdateClaimStatusRequest, opts ...grpc.CallOption) (*UpdateClaimStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateClaimStatusResponse)
	err := c.cc.Invoke(ctx, ClaimsService_UpdateClaimStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ProcessDocuments(ctx context.Context, in *ProcessDocumentsRequest, opts ...grpc.CallOption) (*ProcessDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentsResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ProcessDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ReanalyzeClaim(ctx context.Context, in *ReanalyzeClaimRequest, opts ...grpc.CallOption) (*ReanalyzeClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReanalyzeClaimResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ReanalyzeClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInvoiceResponse)
	err := c.cc.Invoke(ctx, ClaimsService_GetInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ExportClaim(ctx context.Context, in *ExportClaimRequest, opts ...grpc.CallOption) (*ExportClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportClaimResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ExportClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClaimsServiceServer is the server API for ClaimsService service.
// All implementations must embed UnimplementedClaimsServiceServer
// for forward compatibility.
type ClaimsServiceServer interface {
	CreateClaim(context.Context, *CreateClaimRequest) (*CreateClaimResponse, error)
	GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error)
	ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error)
	UpdateClaimStatus(context.Context, *UpdateClaimStatusRequest) (*UpdateClaimStatusResponse, error)
	// ProcessDocuments uploads invoice and evidence files for a claim, runs
	// OCR, validation and coverage on each invoice, and optionally runs the
	// adjuster analysis over the whole claim.
	ProcessDocuments(context.Context, *ProcessDocumentsRequest) (*ProcessDocumentsResponse, error)
	// ReanalyzeClaim reruns the adjuster analysis from already extracted
	// invoice data without repeating OCR.
	ReanalyzeClaim(context.Context, *ReanalyzeClaimRequest) (*ReanalyzeClaimResponse, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error)
	ExportClaim(context.Context, *ExportClaimRequest) (*ExportClaimResponse, error)
	mustEmbedUnimplementedClaimsServiceServer()
}

// UnimplementedClaimsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedClaimsServiceServer struct{}

func (UnimplementedClaimsServiceServer) CreateClaim(context.Context, *CreateClaimRequest) (*CreateClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateClaim not implemented")
}
func (UnimplementedClaimsServiceServer) GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClaim not implemented")
}
func (UnimplementedClaimsServiceServer) ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClaims not implemented")
}
func (UnimplementedClaimsServiceServer) UpdateClaimStatus(context.Context, *UpdateClaimStatusRequest) (*UpdateClaimStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateClaimStatus not implemented")
}
func (UnimplementedClaimsServiceServer) ProcessDocuments(context.Context, *ProcessDocumentsRequest) (*ProcessDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDocuments not implemented")
}
func (UnimplementedClaimsServiceServer) ReanalyzeClaim(context.Context, *ReanalyzeClaimRequest) (*ReanalyzeClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReanalyzeClaim not implemented")
}
func (UnimplementedClaimsServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedClaimsServiceServer) GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInvoice not implemented")
}
func (UnimplementedClaimsServiceServer) ExportClaim(context.Context, *ExportClaimRequest) (*ExportClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportClaim not implemented")
}
func (UnimplementedClaimsServiceServer) mustEmbedUnimplementedClaimsServiceServer() {}
func (UnimplementedClaimsServiceServer) testEmbeddedByValue()                       {}

// UnsafeClaimsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ClaimsServiceServer will
// result in compilation errors.
type UnsafeClaimsServiceServer interface {
	mustEmbedUnimplementedClaimsServiceServer()
}

func RegisterClaimsServiceServer(s grpc.ServiceRegistrar, srv ClaimsServiceServer) {
	// If the following call pancis, it indicates UnimplementedClaimsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ClaimsService_ServiceDesc, srv)
}

func _ClaimsService_CreateClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).CreateClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_CreateClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).CreateClaim(ctx, req.(*CreateClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_GetClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).GetClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_GetClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).GetClaim(ctx, req.(*GetClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ListClaims_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClaimsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ListClaims(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ListClaims_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ListClaims(ctx, req.(*ListClaimsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_UpdateClaimStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateClaimStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).UpdateClaimStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_UpdateClaimStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).UpdateClaimStatus(ctx, req.(*UpdateClaimStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ProcessDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ProcessDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ProcessDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ProcessDocuments(ctx, req.(*ProcessDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ReanalyzeClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReanalyzeClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ReanalyzeClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ReanalyzeClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ReanalyzeClaim(ctx, req.(*ReanalyzeClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_GetInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).GetInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_GetInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).GetInvoice(ctx, req.(*GetInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ExportClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ExportClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ExportClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ExportClaim(ctx, req.(*ExportClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClaimsService_ServiceDesc is the grpc.ServiceDesc for ClaimsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ClaimsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "claims.v1.ClaimsService",
	HandlerType: (*ClaimsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateClaim",
			Handler:    _ClaimsService_CreateClaim_Handler,
		},
		{
			MethodName: "GetClaim",
			Handler:    _ClaimsService_GetClaim_Handler,
		},
		{
			MethodName: "ListClaims",
			Handler:    _ClaimsService_ListClaims_Handler,
		},
		{
			MethodName: "UpdateClaimStatus",
			Handler:    _ClaimsService_UpdateClaimStatus_Handler,
		},
		{
			MethodName: "ProcessDocuments",
			Handler:    _ClaimsService_ProcessDocuments_Handler,
		},
		{
			MethodName: "ReanalyzeClaim",
			Handler:    _ClaimsService_ReanalyzeClaim_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _ClaimsService_ListInvoices_Handler,
		},
		{
			MethodName: "GetInvoice",
			Handler:    _ClaimsService_GetInvoice_Handler,
		},
		{
			MethodName: "ExportClaim",
			Handler:    _ClaimsService_ExportClaim_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "claims/v1/claims.proto",
}
