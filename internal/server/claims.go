package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	claimspb "github.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/export"
	processor "github.com/insurtech-labs/claims-adjudicator/internal/pipeline"
	"github.com/insurtech-labs/claims-adjudicator/internal/repository"
	"github.com/insurtech-labs/claims-adjudicator/internal/utils"
)

type ClaimsServer struct {
	claimspb.UnimplementedClaimsServiceServer
	claimRepo   repository.ClaimRepository
	invoiceRepo repository.InvoiceRepository
	processor   *processor.Processor
	exporter    *export.Service
	logger      *slog.Logger
}

func NewClaimsServer(claims repository.ClaimRepository, invoices repository.InvoiceRepository, proc *processor.Processor, exporter *export.Service, logger *slog.Logger) *ClaimsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimsServer{
		claimRepo:   claims,
		invoiceRepo: invoices,
		processor:   proc,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *ClaimsServer) CreateClaim(ctx context.Context, req *claimspb.CreateClaimRequest) (*claimspb.CreateClaimResponse, error) {
	v := common.NewValidator().
		Field("claim_number", req.GetClaimNumber(), common.Required).
		Field("policy_number", req.GetPolicyNumber(), common.Required).
		Field("claimant_name", req.GetClaimantName(), common.Required).
		Field("property_address", req.GetPropertyAddress(), common.Required).
		Field("date_of_loss", req.GetDateOfLoss(), common.Required, common.ISODate).
		Field("cause_of_loss", req.GetCauseOfLoss(), common.Required, common.OneOf(constants.CausesOfLoss...))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	dateOfLoss, err := utils.ParseYMD(req.GetDateOfLoss())
	if err != nil {
		return nil, common.InvalidArgumentError("date_of_loss must be YYYY-MM-DD")
	}

	claim, err := s.claimRepo.Create(ctx, &repository.CreateClaimRequest{
		ClaimNumber:     strings.TrimSpace(req.GetClaimNumber()),
		PolicyNumber:    strings.TrimSpace(req.GetPolicyNumber()),
		ClaimantName:    strings.TrimSpace(req.GetClaimantName()),
		PropertyAddress: strings.TrimSpace(req.GetPropertyAddress()),
		DateOfLoss:      dateOfLoss,
		CauseOfLoss:     req.GetCauseOfLoss(),
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.AlreadyExistsError("a claim with this claim_number already exists")
		}
		s.logger.Error("create claim failed", "claim_number", req.GetClaimNumber(), "error", err)
		return nil, common.InternalError("create claim failed")
	}

	s.logger.Info("claim created", "claim_number", claim.ClaimNumber, "claim_id", claim.ID)
	return &claimspb.CreateClaimResponse{Claim: utils.ToPBClaim(claim)}, nil
}

func (s *ClaimsServer) GetClaim(ctx context.Context, req *claimspb.GetClaimRequest) (*claimspb.GetClaimResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("claim not found")
		}
		return nil, common.InternalError("get claim failed")
	}
	return &claimspb.GetClaimResponse{Claim: utils.ToPBClaim(claim)}, nil
}

func (s *ClaimsServer) ListClaims(ctx context.Context, req *claimspb.ListClaimsRequest) (*claimspb.ListClaimsResponse, error) {
	claims, total, err := s.claimRepo.List(ctx, int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		s.logger.Error("list claims failed", "error", err)
		return nil, common.InternalError("list claims failed")
	}

	out := make([]*claimspb.Claim, 0, len(claims))
	for _, c := range claims {
		out = append(out, utils.ToPBClaim(c))
	}
	return &claimspb.ListClaimsResponse{Claims: out, Total: int32(total)}, nil
}

func (s *ClaimsServer) UpdateClaimStatus(ctx context.Context, req *claimspb.UpdateClaimStatusRequest) (*claimspb.UpdateClaimStatusResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}
	v := common.NewValidator().
		Field("status", req.GetStatus(), common.Required, common.OneOf(constants.ClaimStatuses...))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	claim, err := s.claimRepo.UpdateStatus(ctx, claimID, constants.ClaimStatus(req.GetStatus()))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("claim not found")
		}
		s.logger.Error("update claim status failed", "claim_id", claimID, "error", err)
		return nil, common.InternalError("update claim status failed")
	}

	s.logger.Info("claim status updated", "claim_number", claim.ClaimNumber, "status", claim.Status)
	return &claimspb.UpdateClaimStatusResponse{Claim: utils.ToPBClaim(claim)}, nil
}

func parseClaimID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "claim_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "claim_id must be a UUID")
	}
	return id, nil
}
