package server

import (
	"context"
	"errors"

	claimspb "github.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
)

func (s *ClaimsServer) ExportClaim(ctx context.Context, req *claimspb.ExportClaimRequest) (*claimspb.ExportClaimResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	xlsx, fileName, err := s.exporter.ExportClaimXLSX(ctx, claimID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("claim not found")
		}
		s.logger.Error("export.xlsx.failed", "claim_id", claimID, "error", err)
		return nil, common.InternalError("export failed")
	}

	return &claimspb.ExportClaimResponse{
		FileName: fileName,
		Content:  xlsx,
	}, nil
}
