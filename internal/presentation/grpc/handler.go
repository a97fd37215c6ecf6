package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hscHeric/credigestor-api/internal/application/usecase"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

// CredigestorHandler implements CredigestorServiceServer on top of the
// application use cases. It owns the translation of domain errors into gRPC
// status codes; everything below it speaks the domain error taxonomy.
type CredigestorHandler struct {
	UnimplementedCredigestorServiceServer

	createSale      *usecase.CreateSaleUseCase
	getSale         *usecase.GetSaleUseCase
	updateSale      *usecase.UpdateSaleUseCase
	deleteSale      *usecase.DeleteSaleUseCase
	registerPayment *usecase.RegisterPaymentUseCase
	listPayments    *usecase.ListPaymentsUseCase
	previewAccrual  *usecase.PreviewAccrualUseCase
	listNotes       *usecase.ListNotesUseCase
	getConfig       *usecase.GetSystemConfigUseCase
	updateConfig    *usecase.UpdateSystemConfigUseCase
}

// NewCredigestorHandler creates a handler with all use-case dependencies.
func NewCredigestorHandler(
	createSale *usecase.CreateSaleUseCase,
	getSale *usecase.GetSaleUseCase,
	updateSale *usecase.UpdateSaleUseCase,
	deleteSale *usecase.DeleteSaleUseCase,
	registerPayment *usecase.RegisterPaymentUseCase,
	listPayments *usecase.ListPaymentsUseCase,
	previewAccrual *usecase.PreviewAccrualUseCase,
	listNotes *usecase.ListNotesUseCase,
	getConfig *usecase.GetSystemConfigUseCase,
	updateConfig *usecase.UpdateSystemConfigUseCase,
) *CredigestorHandler {
	return &CredigestorHandler{
		createSale:      createSale,
		getSale:         getSale,
		updateSale:      updateSale,
		deleteSale:      deleteSale,
		registerPayment: registerPayment,
		listPayments:    listPayments,
		previewAccrual:  previewAccrual,
		listNotes:       listNotes,
		getConfig:       getConfig,
		updateConfig:    updateConfig,
	}
}

// CreateSale registers a financed sale and generates its installment schedule.
func (h *CredigestorHandler) CreateSale(ctx context.Context, req *CreateSaleRequest) (*CreateSaleResponse, error) {
	sale, err := h.createSale.Execute(ctx, req.CreateSaleRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CreateSaleResponse{Sale: sale}, nil
}

// GetSale retrieves a sale and its notes.
func (h *CredigestorHandler) GetSale(ctx context.Context, req *GetSaleRequest) (*GetSaleResponse, error) {
	sale, err := h.getSale.Execute(ctx, req.SaleID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetSaleResponse{Sale: sale}, nil
}

// UpdateSale patches a sale, regenerating the schedule when financial fields
// change.
func (h *CredigestorHandler) UpdateSale(ctx context.Context, req *UpdateSaleRequest) (*UpdateSaleResponse, error) {
	sale, err := h.updateSale.Execute(ctx, req.UpdateSaleRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &UpdateSaleResponse{Sale: sale}, nil
}

// DeleteSale removes a sale together with its notes and payments.
func (h *CredigestorHandler) DeleteSale(ctx context.Context, req *DeleteSaleRequest) (*DeleteSaleResponse, error) {
	if err := h.deleteSale.Execute(ctx, req.SaleID); err != nil {
		return nil, toStatusError(err)
	}
	return &DeleteSaleResponse{}, nil
}

// RegisterPayment applies a payment to a promissory note.
func (h *CredigestorHandler) RegisterPayment(ctx context.Context, req *RegisterPaymentRequest) (*RegisterPaymentResponse, error) {
	payment, err := h.registerPayment.Execute(ctx, req.RegisterPaymentRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &RegisterPaymentResponse{Payment: payment}, nil
}

// ListPayments retrieves a note's payment history.
func (h *CredigestorHandler) ListPayments(ctx context.Context, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	payments, err := h.listPayments.Execute(ctx, req.PromissoryNoteID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListPaymentsResponse{Payments: payments}, nil
}

// PreviewAccrual projects the fine and interest owed on a note without
// persisting anything.
func (h *CredigestorHandler) PreviewAccrual(ctx context.Context, req *PreviewAccrualRequest) (*PreviewAccrualResponse, error) {
	accrual, err := h.previewAccrual.Execute(ctx, req.PreviewAccrualRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &PreviewAccrualResponse{Accrual: accrual}, nil
}

// ListNotes retrieves the filtered note listing joined with customer names.
func (h *CredigestorHandler) ListNotes(ctx context.Context, req *ListNotesRequest) (*ListNotesResponse, error) {
	list, err := h.listNotes.Execute(ctx, req.ListNotesRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListNotesResponse{NoteListResponse: list}, nil
}

// GetSystemConfig retrieves the rate configuration, creating the defaults on
// first read.
func (h *CredigestorHandler) GetSystemConfig(ctx context.Context, _ *GetSystemConfigRequest) (*GetSystemConfigResponse, error) {
	cfg, err := h.getConfig.Execute(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetSystemConfigResponse{Config: cfg}, nil
}

// UpdateSystemConfig patches the rate configuration.
func (h *CredigestorHandler) UpdateSystemConfig(ctx context.Context, req *UpdateSystemConfigRequest) (*UpdateSystemConfigResponse, error) {
	cfg, err := h.updateConfig.Execute(ctx, req.UpdateSystemConfigRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &UpdateSystemConfigResponse{Config: cfg}, nil
}

// toStatusError maps the domain error taxonomy onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case model.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case model.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case model.IsConflict(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
