package server

import (
	"context"
	"errors"

	claimspb "github.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	processor "github.com/insurtech-labs/claims-adjudicator/internal/pipeline"
	"github.com/insurtech-labs/claims-adjudicator/internal/utils"
)

// ProcessDocuments implements claimspb.ClaimsServiceServer
func (s *ClaimsServer) ProcessDocuments(ctx context.Context, req *claimspb.ProcessDocumentsRequest) (*claimspb.ProcessDocumentsResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	s.logger.Info("processing documents",
		"claim_id", claimID,
		"invoices", len(req.GetInvoices()),
		"evidence", len(req.GetEvidence()),
		"run_analysis", req.GetRunAnalysis(),
	)
	result, err := s.processor.ProcessDocuments(ctx, claimID, processor.ProcessRequest{
		Invoices:    toUploads(req.GetInvoices()),
		Evidence:    toUploads(req.GetEvidence()),
		RunAnalysis: req.GetRunAnalysis(),
	})
	if err != nil {
		return nil, mapPipelineError(err)
	}

	invoices := make([]*claimspb.Invoice, 0, len(result.Invoices))
	for _, inv := range result.Invoices {
		invoices = append(invoices, utils.ToPBInvoice(inv))
	}
	return &claimspb.ProcessDocumentsResponse{
		Claim:    utils.ToPBClaim(result.Claim),
		Invoices: invoices,
	}, nil
}

// ReanalyzeClaim implements claimspb.ClaimsServiceServer
func (s *ClaimsServer) ReanalyzeClaim(ctx context.Context, req *claimspb.ReanalyzeClaimRequest) (*claimspb.ReanalyzeClaimResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	s.logger.Info("reanalyzing claim", "claim_id", claimID)
	result, err := s.processor.Reanalyze(ctx, claimID)
	if err != nil {
		return nil, mapPipelineError(err)
	}
	return &claimspb.ReanalyzeClaimResponse{Claim: utils.ToPBClaim(result.Claim)}, nil
}

func toUploads(in []*claimspb.Upload) []processor.UploadFile {
	out := make([]processor.UploadFile, 0, len(in))
	for _, u := range in {
		out = append(out, processor.UploadFile{
			FileName: u.GetFileName(),
			MimeType: u.GetMimeType(),
			Data:     u.GetContent(),
		})
	}
	return out
}

func mapPipelineError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError("claim not found")
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrUpstream):
		return common.InternalErrorf("document analysis failed: %v", err)
	default:
		return common.InternalError("document processing failed")
	}
}
