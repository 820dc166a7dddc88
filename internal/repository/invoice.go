package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/coverage"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/extract"
	"github.com/insurtech-labs/claims-adjudicator/internal/utils"
)

type InvoiceRepository interface {
	Create(ctx context.Context, claimID uuid.UUID, fileName, fileType string, fileSize int) (*entity.ClaimInvoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClaimInvoice, error)
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.ClaimInvoice, error)
	UpdateOCR(ctx context.Context, id uuid.UUID, data *extract.ParsedInvoiceData, raw json.RawMessage) (*entity.ClaimInvoice, error)
	UpdateValidation(ctx context.Context, id uuid.UUID, flags []entity.ValidationFlag, status constants.ValidationStatus) error
	UpdateCoverage(ctx context.Context, id uuid.UUID, b coverage.Breakdown, adjudication constants.AdjudicationStatus) error
	SetAnalysis(ctx context.Context, id uuid.UUID, analysis json.RawMessage) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, claimID uuid.UUID, fileName, fileType string, fileSize int) (*entity.ClaimInvoice, error) {
	row, err := r.client.ClaimInvoice.Create().
		SetClaimID(claimID).
		SetFileName(fileName).
		SetFileType(fileType).
		SetFileSize(fileSize).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "claim_id", claimID, "file_name", fileName, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClaimInvoice, error) {
	row, err := r.client.ClaimInvoice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

// ListByClaim returns the claim's invoices in upload order. The pipeline
// response and the adjuster prompt both preserve this order.
func (r *invoiceRepository) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.ClaimInvoice, error) {
	rows, err := r.client.ClaimInvoice.Query().
		Where(claiminvoice.ClaimID(claimID)).
		Order(ent.Asc(claiminvoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "claim_id", claimID, "error", err)
		return nil, err
	}

	result := make([]*entity.ClaimInvoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

// UpdateOCR records the extracted fields and the raw analyzer response on an
// invoice and stamps processed_at.
func (r *invoiceRepository) UpdateOCR(ctx context.Context, id uuid.UUID, data *extract.ParsedInvoiceData, raw json.RawMessage) (*entity.ClaimInvoice, error) {
	upd := r.client.ClaimInvoice.UpdateOneID(id).
		SetNillableVendorName(data.VendorName).
		SetNillableVendorAddress(data.VendorAddress).
		SetNillableVendorPhone(data.VendorPhone).
		SetNillableInvoiceNumber(data.InvoiceNumber).
		SetNillableInvoiceDate(data.InvoiceDate).
		SetNillableDueDate(data.DueDate).
		SetNillableTotalAmount(data.TotalAmount).
		SetNillableOcrConfidence(data.Confidence).
		SetProcessedAt(time.Now())

	if data.Currency != "" {
		upd = upd.SetCurrency(data.Currency)
	}
	if len(data.LineItems) > 0 {
		items, err := json.Marshal(data.LineItems)
		if err != nil {
			return nil, err
		}
		upd = upd.SetLineItems(items)
	}
	if len(raw) > 0 {
		upd = upd.SetOcrRawData(raw)
	}

	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update invoice with ocr results", "invoice_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) UpdateValidation(ctx context.Context, id uuid.UUID, flags []entity.ValidationFlag, status constants.ValidationStatus) error {
	err := r.client.ClaimInvoice.UpdateOneID(id).
		SetValidationFlags(flags).
		SetValidationStatus(string(status)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to update invoice validation", "invoice_id", id, "error", err)
	}
	return err
}

func (r *invoiceRepository) UpdateCoverage(ctx context.Context, id uuid.UUID, b coverage.Breakdown, adjudication constants.AdjudicationStatus) error {
	err := r.client.ClaimInvoice.UpdateOneID(id).
		SetCoveredAmount(b.CoveredAmount).
		SetNonCoveredAmount(b.NonCoveredAmount).
		SetDepreciation(b.Depreciation).
		SetDeductible(b.Deductible).
		SetRecommendedPayout(b.RecommendedPayout).
		SetAdjudicationStatus(string(adjudication)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to update invoice coverage", "invoice_id", id, "error", err)
	}
	return err
}

func (r *invoiceRepository) SetAnalysis(ctx context.Context, id uuid.UUID, analysis json.RawMessage) error {
	err := r.client.ClaimInvoice.UpdateOneID(id).
		SetAnalysis(analysis).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to set invoice analysis", "invoice_id", id, "error", err)
	}
	return err
}
