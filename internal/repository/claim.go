package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/utils"
)

// CreateClaimRequest wraps parameters for opening a new claim.
type CreateClaimRequest struct {
	ClaimNumber     string
	PolicyNumber    string
	ClaimantName    string
	PropertyAddress string
	DateOfLoss      time.Time
	CauseOfLoss     string
}

type ClaimRepository interface {
	Create(ctx context.Context, req *CreateClaimRequest) (*entity.Claim, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error)
	GetByNumber(ctx context.Context, claimNumber string) (*entity.Claim, error)
	List(ctx context.Context, page, limit int) ([]*entity.Claim, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ClaimStatus) (*entity.Claim, error)
	SetAnalysis(ctx context.Context, id uuid.UUID, analysis json.RawMessage) error
}

type claimRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewClaimRepository(client *ent.Client, logger *slog.Logger) ClaimRepository {
	return &claimRepository{
		client: client,
		logger: logger,
	}
}

func (r *claimRepository) Create(ctx context.Context, req *CreateClaimRequest) (*entity.Claim, error) {
	row, err := r.client.Claim.Create().
		SetClaimNumber(req.ClaimNumber).
		SetPolicyNumber(req.PolicyNumber).
		SetClaimantName(req.ClaimantName).
		SetPropertyAddress(req.PropertyAddress).
		SetDateOfLoss(req.DateOfLoss).
		SetCauseOfLoss(req.CauseOfLoss).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrDuplicate
		}
		r.logger.Error("failed to create claim", "claim_number", req.ClaimNumber, "error", err)
		return nil, err
	}
	return utils.ToClaim(row), nil
}

func (r *claimRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	row, err := r.client.Claim.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get claim", "claim_id", id, "error", err)
		return nil, err
	}
	return utils.ToClaim(row), nil
}

func (r *claimRepository) GetByNumber(ctx context.Context, claimNumber string) (*entity.Claim, error) {
	row, err := r.client.Claim.Query().
		Where(claim.ClaimNumber(claimNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get claim by number", "claim_number", claimNumber, "error", err)
		return nil, err
	}
	return utils.ToClaim(row), nil
}

func (r *claimRepository) List(ctx context.Context, page, limit int) ([]*entity.Claim, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := r.client.Claim.Query()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count claims", "error", err)
		return nil, 0, err
	}

	rows, err := q.
		Order(ent.Desc(claim.FieldCreatedAt)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list claims", "error", err)
		return nil, 0, err
	}

	result := make([]*entity.Claim, len(rows))
	for i, row := range rows {
		result[i] = utils.ToClaim(row)
	}
	return result, total, nil
}

func (r *claimRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ClaimStatus) (*entity.Claim, error) {
	row, err := r.client.Claim.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update claim status", "claim_id", id, "status", status, "error", err)
		return nil, err
	}
	return utils.ToClaim(row), nil
}

func (r *claimRepository) SetAnalysis(ctx context.Context, id uuid.UUID, analysis json.RawMessage) error {
	err := r.client.Claim.UpdateOneID(id).
		SetAnalysis(analysis).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to set claim analysis", "claim_id", id, "error", err)
	}
	return err
}
