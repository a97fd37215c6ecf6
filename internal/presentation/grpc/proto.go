package grpc

// proto.go defines the gRPC server interface derived from
// credigestor/v1/credigestor.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/hscHeric/credigestor-api/api/gen/go/credigestor/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// CreateSaleRequest mirrors credigestor.v1.CreateSaleRequest.
type CreateSaleRequest struct {
	dto.CreateSaleRequest
}

// CreateSaleResponse mirrors credigestor.v1.CreateSaleResponse.
type CreateSaleResponse struct {
	Sale dto.SaleResponse `json:"sale"`
}

// GetSaleRequest mirrors credigestor.v1.GetSaleRequest.
type GetSaleRequest struct {
	SaleID string `json:"sale_id"`
}

// GetSaleResponse mirrors credigestor.v1.GetSaleResponse.
type GetSaleResponse struct {
	Sale dto.SaleResponse `json:"sale"`
}

// UpdateSaleRequest mirrors credigestor.v1.UpdateSaleRequest.
type UpdateSaleRequest struct {
	dto.UpdateSaleRequest
}

// UpdateSaleResponse mirrors credigestor.v1.UpdateSaleResponse.
type UpdateSaleResponse struct {
	Sale dto.SaleResponse `json:"sale"`
}

// DeleteSaleRequest mirrors credigestor.v1.DeleteSaleRequest.
type DeleteSaleRequest struct {
	SaleID string `json:"sale_id"`
}

// DeleteSaleResponse mirrors credigestor.v1.DeleteSaleResponse.
type DeleteSaleResponse struct{}

// RegisterPaymentRequest mirrors credigestor.v1.RegisterPaymentRequest.
type RegisterPaymentRequest struct {
	dto.RegisterPaymentRequest
}

// RegisterPaymentResponse mirrors credigestor.v1.RegisterPaymentResponse.
type RegisterPaymentResponse struct {
	Payment dto.PaymentResponse `json:"payment"`
}

// ListPaymentsRequest mirrors credigestor.v1.ListPaymentsRequest.
type ListPaymentsRequest struct {
	PromissoryNoteID string `json:"promissory_note_id"`
}

// ListPaymentsResponse mirrors credigestor.v1.ListPaymentsResponse.
type ListPaymentsResponse struct {
	Payments []dto.PaymentResponse `json:"payments"`
}

// PreviewAccrualRequest mirrors credigestor.v1.PreviewAccrualRequest.
type PreviewAccrualRequest struct {
	dto.PreviewAccrualRequest
}

// PreviewAccrualResponse mirrors credigestor.v1.PreviewAccrualResponse.
type PreviewAccrualResponse struct {
	Accrual dto.AccrualResponse `json:"accrual"`
}

// ListNotesRequest mirrors credigestor.v1.ListNotesRequest.
type ListNotesRequest struct {
	dto.ListNotesRequest
}

// ListNotesResponse mirrors credigestor.v1.ListNotesResponse.
type ListNotesResponse struct {
	dto.NoteListResponse
}

// GetSystemConfigRequest mirrors credigestor.v1.GetSystemConfigRequest.
type GetSystemConfigRequest struct{}

// GetSystemConfigResponse mirrors credigestor.v1.GetSystemConfigResponse.
type GetSystemConfigResponse struct {
	Config dto.SystemConfigResponse `json:"config"`
}

// UpdateSystemConfigRequest mirrors credigestor.v1.UpdateSystemConfigRequest.
type UpdateSystemConfigRequest struct {
	dto.UpdateSystemConfigRequest
}

// UpdateSystemConfigResponse mirrors credigestor.v1.UpdateSystemConfigResponse.
type UpdateSystemConfigResponse struct {
	Config dto.SystemConfigResponse `json:"config"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// CredigestorServiceServer is the server API for CredigestorService.
// It mirrors the proto-generated interface from credigestor.v1.CredigestorService.
type CredigestorServiceServer interface {
	CreateSale(context.Context, *CreateSaleRequest) (*CreateSaleResponse, error)
	GetSale(context.Context, *GetSaleRequest) (*GetSaleResponse, error)
	UpdateSale(context.Context, *UpdateSaleRequest) (*UpdateSaleResponse, error)
	DeleteSale(context.Context, *DeleteSaleRequest) (*DeleteSaleResponse, error)
	RegisterPayment(context.Context, *RegisterPaymentRequest) (*RegisterPaymentResponse, error)
	ListPayments(context.Context, *ListPaymentsRequest) (*ListPaymentsResponse, error)
	PreviewAccrual(context.Context, *PreviewAccrualRequest) (*PreviewAccrualResponse, error)
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	GetSystemConfig(context.Context, *GetSystemConfigRequest) (*GetSystemConfigResponse, error)
	UpdateSystemConfig(context.Context, *UpdateSystemConfigRequest) (*UpdateSystemConfigResponse, error)
	mustEmbedUnimplementedCredigestorServiceServer()
}

// UnimplementedCredigestorServiceServer provides forward-compatible default implementations.
type UnimplementedCredigestorServiceServer struct{}

func (UnimplementedCredigestorServiceServer) CreateSale(context.Context, *CreateSaleRequest) (*CreateSaleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSale not implemented")
}
func (UnimplementedCredigestorServiceServer) GetSale(context.Context, *GetSaleRequest) (*GetSaleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSale not implemented")
}
func (UnimplementedCredigestorServiceServer) UpdateSale(context.Context, *UpdateSaleRequest) (*UpdateSaleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSale not implemented")
}
func (UnimplementedCredigestorServiceServer) DeleteSale(context.Context, *DeleteSaleRequest) (*DeleteSaleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSale not implemented")
}
func (UnimplementedCredigestorServiceServer) RegisterPayment(context.Context, *RegisterPaymentRequest) (*RegisterPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterPayment not implemented")
}
func (UnimplementedCredigestorServiceServer) ListPayments(context.Context, *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPayments not implemented")
}
func (UnimplementedCredigestorServiceServer) PreviewAccrual(context.Context, *PreviewAccrualRequest) (*PreviewAccrualResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewAccrual not implemented")
}
func (UnimplementedCredigestorServiceServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNotes not implemented")
}
func (UnimplementedCredigestorServiceServer) GetSystemConfig(context.Context, *GetSystemConfigRequest) (*GetSystemConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSystemConfig not implemented")
}
func (UnimplementedCredigestorServiceServer) UpdateSystemConfig(context.Context, *UpdateSystemConfigRequest) (*UpdateSystemConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSystemConfig not implemented")
}
func (UnimplementedCredigestorServiceServer) mustEmbedUnimplementedCredigestorServiceServer() {}

// RegisterCredigestorServiceServer registers the CredigestorServiceServer with the gRPC server.
func RegisterCredigestorServiceServer(s *grpclib.Server, srv CredigestorServiceServer) {
	s.RegisterService(&_CredigestorService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CredigestorService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "credigestor.v1.CredigestorService",
	HandlerType: (*CredigestorServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateSale", Handler: _CredigestorService_CreateSale_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetSale", Handler: _CredigestorService_GetSale_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "UpdateSale", Handler: _CredigestorService_UpdateSale_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "DeleteSale", Handler: _CredigestorService_DeleteSale_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "RegisterPayment", Handler: _CredigestorService_RegisterPayment_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListPayments", Handler: _CredigestorService_ListPayments_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "PreviewAccrual", Handler: _CredigestorService_PreviewAccrual_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ListNotes", Handler: _CredigestorService_ListNotes_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "GetSystemConfig", Handler: _CredigestorService_GetSystemConfig_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "UpdateSystemConfig", Handler: _CredigestorService_UpdateSystemConfig_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_CreateSale_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSaleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).CreateSale(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/CreateSale",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).CreateSale(ctx, req.(*CreateSaleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_GetSale_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSaleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).GetSale(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/GetSale",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).GetSale(ctx, req.(*GetSaleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_UpdateSale_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSaleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).UpdateSale(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/UpdateSale",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).UpdateSale(ctx, req.(*UpdateSaleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_DeleteSale_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSaleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).DeleteSale(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/DeleteSale",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).DeleteSale(ctx, req.(*DeleteSaleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_RegisterPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).RegisterPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/RegisterPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).RegisterPayment(ctx, req.(*RegisterPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_ListPayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPaymentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).ListPayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/ListPayments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).ListPayments(ctx, req.(*ListPaymentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_PreviewAccrual_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewAccrualRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).PreviewAccrual(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/PreviewAccrual",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).PreviewAccrual(ctx, req.(*PreviewAccrualRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_ListNotes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).ListNotes(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/ListNotes",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).ListNotes(ctx, req.(*ListNotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_GetSystemConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSystemConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).GetSystemConfig(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/GetSystemConfig",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).GetSystemConfig(ctx, req.(*GetSystemConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CredigestorService_UpdateSystemConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSystemConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredigestorServiceServer).UpdateSystemConfig(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credigestor.v1.CredigestorService/UpdateSystemConfig",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CredigestorServiceServer).UpdateSystemConfig(ctx, req.(*UpdateSystemConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}
