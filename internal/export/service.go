package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/repository"
)

// Service produces XLSX bytes for claim exports.
type Service struct {
	claimsRepo   repository.ClaimRepository
	invoicesRepo repository.InvoiceRepository
	logger       *slog.Logger
}

func NewService(claims repository.ClaimRepository, invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{claimsRepo: claims, invoicesRepo: invoices, logger: logger}
}

// ExportClaimXLSX returns an XLSX workbook for one claim: a summary sheet
// and one row per invoice with its extracted fields, validation outcome and
// coverage numbers.
func (s *Service) ExportClaimXLSX(ctx context.Context, claimID uuid.UUID) ([]byte, string, error) {
	start := time.Now()

	claim, err := s.claimsRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, "", err
	}
	invoices, err := s.invoicesRepo.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, "", fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"File Name",
		"Vendor",
		"Invoice Number",
		"Invoice Date",
		"Total Amount",
		"Currency",
		"Validation Status",
		"Flags",
		"Covered Amount",
		"Depreciation",
		"Deductible",
		"Recommended Payout",
		"Adjudication",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.FileName)
		if inv.VendorName != nil {
			write(2, *inv.VendorName)
		}
		if inv.InvoiceNumber != nil {
			write(3, *inv.InvoiceNumber)
		}
		if inv.InvoiceDate != nil {
			write(4, inv.InvoiceDate.Format("2006-01-02"))
		}
		if inv.TotalAmount != nil {
			write(5, *inv.TotalAmount)
		}
		write(6, inv.Currency)
		write(7, string(inv.ValidationStatus))
		write(8, flagSummary(inv.ValidationFlags))
		if inv.CoveredAmount != nil {
			write(9, *inv.CoveredAmount)
		}
		if inv.Depreciation != nil {
			write(10, *inv.Depreciation)
		}
		if inv.Deductible != nil {
			write(11, *inv.Deductible)
		}
		if inv.RecommendedPayout != nil {
			write(12, *inv.RecommendedPayout)
		}
		if inv.AdjudicationStatus != nil {
			write(13, string(*inv.AdjudicationStatus))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // file
	_ = f.SetColWidth(sheet, "B", "B", 28) // vendor
	_ = f.SetColWidth(sheet, "C", "D", 16)
	_ = f.SetColWidth(sheet, "E", "E", 14)
	_ = f.SetColWidth(sheet, "G", "G", 18)
	_ = f.SetColWidth(sheet, "H", "H", 48) // flags
	_ = f.SetColWidth(sheet, "I", "L", 18)
	_ = f.SetColWidth(sheet, "M", "M", 24)

	const summary = "Claim"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, "", err
	}
	summaryRows := [][2]any{
		{"Claim Number", claim.ClaimNumber},
		{"Policy Number", claim.PolicyNumber},
		{"Claimant", claim.ClaimantName},
		{"Property Address", claim.PropertyAddress},
		{"Date of Loss", claim.DateOfLoss.Format("2006-01-02")},
		{"Cause of Loss", string(claim.CauseOfLoss)},
		{"Status", string(claim.Status)},
		{"Invoices", len(invoices)},
	}
	for i, kv := range summaryRows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(summary, keyCell, kv[0])
		_ = f.SetCellValue(summary, valCell, kv[1])
	}
	_ = f.SetColWidth(summary, "A", "A", 20)
	_ = f.SetColWidth(summary, "B", "B", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx write: %w", err)
	}

	fileName := fmt.Sprintf("claim_%s.xlsx", claim.ClaimNumber)
	s.logger.Info("export.xlsx.ok",
		"claim_number", claim.ClaimNumber,
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), fileName, nil
}

func flagSummary(flags []entity.ValidationFlag) string {
	if len(flags) == 0 {
		return ""
	}
	out := ""
	for i, fl := range flags {
		if i > 0 {
			out += "; "
		}
		out += fl.Code
	}
	return out
}
