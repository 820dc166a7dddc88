package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/gen/ent"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/utils"
)

type EvidenceRepository interface {
	Create(ctx context.Context, claimID uuid.UUID, fileName, fileType, filePath string, fileSize int, evidenceType string) (*entity.ClaimEvidence, error)
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.ClaimEvidence, error)
}

type evidenceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEvidenceRepository(client *ent.Client, logger *slog.Logger) EvidenceRepository {
	return &evidenceRepository{
		client: client,
		logger: logger,
	}
}

func (r *evidenceRepository) Create(ctx context.Context, claimID uuid.UUID, fileName, fileType, filePath string, fileSize int, evidenceType string) (*entity.ClaimEvidence, error) {
	builder := r.client.ClaimEvidence.Create().
		SetClaimID(claimID).
		SetFileName(fileName).
		SetFileType(fileType).
		SetFilePath(filePath).
		SetFileSize(fileSize)
	if evidenceType != "" {
		builder = builder.SetEvidenceType(evidenceType)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create evidence record", "claim_id", claimID, "file_name", fileName, "error", err)
		return nil, err
	}
	return utils.ToEvidence(row), nil
}

func (r *evidenceRepository) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.ClaimEvidence, error) {
	rows, err := r.client.ClaimEvidence.Query().
		Where(claimevidence.ClaimID(claimID)).
		Order(ent.Asc(claimevidence.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list evidence", "claim_id", claimID, "error", err)
		return nil, err
	}

	result := make([]*entity.ClaimEvidence, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEvidence(row)
	}
	return result, nil
}
