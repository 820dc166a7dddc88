package server

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	claimspb "github.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/utils"
)

func (s *ClaimsServer) ListInvoices(ctx context.Context, req *claimspb.ListInvoicesRequest) (*claimspb.ListInvoicesResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	// Listing for an unknown claim is a not-found, not an empty list.
	if _, err := s.claimRepo.GetByID(ctx, claimID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("claim not found")
		}
		return nil, common.InternalError("list invoices failed")
	}

	invoices, err := s.invoiceRepo.ListByClaim(ctx, claimID)
	if err != nil {
		s.logger.Error("list invoices failed", "claim_id", claimID, "error", err)
		return nil, common.InternalError("list invoices failed")
	}

	out := make([]*claimspb.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &claimspb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *ClaimsServer) GetInvoice(ctx context.Context, req *claimspb.GetInvoiceRequest) (*claimspb.GetInvoiceResponse, error) {
	raw := strings.TrimSpace(req.GetInvoiceId())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "invoice_id is required")
	}
	invoiceID, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invoice_id must be a UUID")
	}

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("invoice not found")
		}
		return nil, common.InternalError("get invoice failed")
	}
	return &claimspb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}
