// Package processor coordinates the claim document pipeline: OCR, field
// extraction, rule validation, coverage, and the adjuster analysis.
package processor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/coverage"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/extract"
	"github.com/insurtech-labs/claims-adjudicator/internal/llm"
	"github.com/insurtech-labs/claims-adjudicator/internal/ocr"
	"github.com/insurtech-labs/claims-adjudicator/internal/repository"
	"github.com/insurtech-labs/claims-adjudicator/internal/rules"
	"github.com/insurtech-labs/claims-adjudicator/internal/storage"
)

// Adjuster produces a claim analysis from extracted data. It never fails;
// the deterministic fallback is part of its contract.
type Adjuster interface {
	Analyze(ctx context.Context, claim llm.ClaimContext, invoices []llm.InvoiceData, images []llm.EvidenceImage) entity.LLMClaimAnalysis
}

// UploadFile is one document received over the API.
type UploadFile struct {
	FileName string
	MimeType string
	Data     []byte
}

// ProcessRequest carries one document batch for a claim.
type ProcessRequest struct {
	Invoices    []UploadFile
	Evidence    []UploadFile
	RunAnalysis bool
}

// Result is the claim and its invoices after the batch completed.
type Result struct {
	Claim    *entity.Claim
	Invoices []*entity.ClaimInvoice
}

type Processor struct {
	Logger   *slog.Logger
	Claims   repository.ClaimRepository
	Invoices repository.InvoiceRepository
	Evidence repository.EvidenceRepository
	Analyzer ocr.Analyzer
	Adjuster Adjuster
	Store    *storage.Store

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewProcessor(logger *slog.Logger, claims repository.ClaimRepository, invoices repository.InvoiceRepository, evidence repository.EvidenceRepository, analyzer ocr.Analyzer, adjuster Adjuster, store *storage.Store) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:   logger,
		Claims:   claims,
		Invoices: invoices,
		Evidence: evidence,
		Analyzer: analyzer,
		Adjuster: adjuster,
		Store:    store,
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// claimLock returns the mutex serializing processing for one claim.
// Batches for different claims run concurrently; two batches for the same
// claim never interleave.
func (p *Processor) claimLock(claimID uuid.UUID) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[claimID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[claimID] = l
	}
	return l
}

// ProcessDocuments runs the full pipeline for one document batch: each
// invoice goes through OCR, extraction, validation and coverage in upload
// order, evidence files are stored, and when requested a single adjuster
// analysis over the whole claim is persisted onto the claim and broadcast to
// every invoice. An OCR failure halts the batch; invoices already processed
// keep their results.
func (p *Processor) ProcessDocuments(ctx context.Context, claimID uuid.UUID, req ProcessRequest) (*Result, error) {
	claim, err := p.Claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if err := validateUploads(req); err != nil {
		return nil, err
	}

	lock := p.claimLock(claimID)
	lock.Lock()
	defer lock.Unlock()

	if claim, err = p.Claims.UpdateStatus(ctx, claimID, constants.ClaimStatusInProgress); err != nil {
		return nil, err
	}
	p.Logger.Info("pipeline.batch.start",
		"claim_number", claim.ClaimNumber,
		"invoices", len(req.Invoices),
		"evidence", len(req.Evidence),
		"run_analysis", req.RunAnalysis,
	)

	for _, up := range req.Invoices {
		if err := p.processInvoice(ctx, claim, up); err != nil {
			p.Logger.Error("pipeline.invoice.failed", "claim_number", claim.ClaimNumber, "file_name", up.FileName, "error", err)
			return nil, err
		}
	}

	for _, up := range req.Evidence {
		path, err := p.Store.Save(claimID, up.FileName, up.Data)
		if err != nil {
			return nil, err
		}
		if _, err := p.Evidence.Create(ctx, claimID, up.FileName, up.MimeType, path, len(up.Data), "damage_photo"); err != nil {
			return nil, err
		}
	}

	if req.RunAnalysis {
		if err := p.analyzeClaim(ctx, claim); err != nil {
			return nil, err
		}
	}

	return p.result(ctx, claimID)
}

// Reanalyze reruns the adjuster analysis from the invoice fields already on
// record, without repeating OCR.
func (p *Processor) Reanalyze(ctx context.Context, claimID uuid.UUID) (*Result, error) {
	claim, err := p.Claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	lock := p.claimLock(claimID)
	lock.Lock()
	defer lock.Unlock()

	if err := p.analyzeClaim(ctx, claim); err != nil {
		return nil, err
	}
	return p.result(ctx, claimID)
}

func (p *Processor) processInvoice(ctx context.Context, claim *entity.Claim, up UploadFile) error {
	inv, err := p.Invoices.Create(ctx, claim.ID, up.FileName, up.MimeType, len(up.Data))
	if err != nil {
		return err
	}

	res, raw, err := p.Analyzer.AnalyzeInvoice(ctx, up.Data, up.MimeType)
	if err != nil {
		return fmt.Errorf("%w: analyze %s: %w", common.ErrUpstream, up.FileName, err)
	}

	parsed := extract.ParseInvoiceFields(res)
	if _, err := p.Invoices.UpdateOCR(ctx, inv.ID, &parsed, raw); err != nil {
		return err
	}

	var lineItems json.RawMessage
	if len(parsed.LineItems) > 0 {
		lineItems, _ = json.Marshal(parsed.LineItems)
	}
	flags := rules.Validate(rules.InvoiceFacts{
		VendorName:  parsed.VendorName,
		InvoiceDate: parsed.InvoiceDate,
		TotalAmount: parsed.TotalAmount,
		LineItems:   lineItems,
	}, claim.DateOfLoss)
	if err := p.Invoices.UpdateValidation(ctx, inv.ID, flags, rules.DeriveStatus(flags)); err != nil {
		return err
	}

	// A missing total still gets a coverage breakdown: zero covered, the
	// full deductible, payout zero, and a review recommendation.
	total := 0.0
	if parsed.TotalAmount != nil {
		total = *parsed.TotalAmount
	}
	b := coverage.Simplified(total)
	if err := p.Invoices.UpdateCoverage(ctx, inv.ID, b, coverage.Adjudicate(b)); err != nil {
		return err
	}

	p.Logger.Info("pipeline.invoice.ok",
		"claim_number", claim.ClaimNumber,
		"invoice_id", inv.ID,
		"file_name", up.FileName,
		"flags", len(flags),
	)
	return nil
}

// analyzeClaim runs one adjuster analysis over every invoice on the claim
// and persists it on the claim and on each invoice.
func (p *Processor) analyzeClaim(ctx context.Context, claim *entity.Claim) error {
	invoices, err := p.Invoices.ListByClaim(ctx, claim.ID)
	if err != nil {
		return err
	}

	data := make([]llm.InvoiceData, 0, len(invoices))
	for _, inv := range invoices {
		d := llm.InvoiceData{
			VendorName:    inv.VendorName,
			VendorAddress: inv.VendorAddress,
			InvoiceNumber: inv.InvoiceNumber,
			TotalAmount:   inv.TotalAmount,
		}
		if inv.InvoiceDate != nil {
			s := inv.InvoiceDate.Format("2006-01-02")
			d.InvoiceDate = &s
		}
		items, err := inv.DecodeLineItems()
		if err != nil {
			p.Logger.Warn("pipeline.analysis.line_items_unreadable", "invoice_id", inv.ID, "error", err)
		}
		for _, it := range items {
			d.LineItems = append(d.LineItems, llm.InvoiceLineItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Amount:      it.Amount,
			})
		}
		data = append(data, d)
	}

	images := p.loadImages(ctx, claim.ID)

	analysis := p.Adjuster.Analyze(ctx, llm.ClaimContext{
		ClaimNumber:     claim.ClaimNumber,
		PolicyNumber:    claim.PolicyNumber,
		ClaimantName:    claim.ClaimantName,
		PropertyAddress: claim.PropertyAddress,
		DateOfLoss:      claim.DateOfLoss.Format("2006-01-02"),
		CauseOfLoss:     string(claim.CauseOfLoss),
	}, data, images)

	raw, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	if err := p.Claims.SetAnalysis(ctx, claim.ID, raw); err != nil {
		return err
	}

	b := coverage.FromAnalysis(analysis.CoverageAnalysis)
	adjudication := coverage.Adjudicate(b)
	for _, inv := range invoices {
		if err := p.Invoices.SetAnalysis(ctx, inv.ID, raw); err != nil {
			return err
		}
		if err := p.Invoices.UpdateCoverage(ctx, inv.ID, b, adjudication); err != nil {
			return err
		}
	}

	p.Logger.Info("pipeline.analysis.ok",
		"claim_number", claim.ClaimNumber,
		"invoices", len(invoices),
		"recommended_action", analysis.RecommendedAction,
		"confidence", analysis.ConfidenceScore,
	)
	return nil
}

// loadImages reads the stored evidence back as inline base64 attachments.
// Storage problems degrade to a text-only analysis rather than failing it.
func (p *Processor) loadImages(ctx context.Context, claimID uuid.UUID) []llm.EvidenceImage {
	items, err := p.Evidence.ListByClaim(ctx, claimID)
	if err != nil {
		p.Logger.Warn("pipeline.analysis.evidence_unavailable", "claim_id", claimID, "error", err)
		return nil
	}
	var images []llm.EvidenceImage
	for _, f := range p.Store.Load(derefEvidence(items)) {
		images = append(images, llm.EvidenceImage{
			Base64:   base64.StdEncoding.EncodeToString(f.Bytes),
			MimeType: f.MimeType,
			FileName: f.FileName,
		})
	}
	return images
}

func (p *Processor) result(ctx context.Context, claimID uuid.UUID) (*Result, error) {
	claim, err := p.Claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	invoices, err := p.Invoices.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return &Result{Claim: claim, Invoices: invoices}, nil
}

func validateUploads(req ProcessRequest) error {
	if len(req.Invoices) == 0 && len(req.Evidence) == 0 && !req.RunAnalysis {
		return fmt.Errorf("%w: nothing to process", common.ErrInvalidInput)
	}
	for _, up := range append(append([]UploadFile{}, req.Invoices...), req.Evidence...) {
		if len(up.Data) == 0 {
			return fmt.Errorf("%w: %s is empty", common.ErrInvalidInput, up.FileName)
		}
		if len(up.Data) > constants.MaxUploadBytes {
			return fmt.Errorf("%w: %s exceeds the %d byte upload limit", common.ErrInvalidInput, up.FileName, constants.MaxUploadBytes)
		}
		if !constants.IsAllowedMimeType(up.MimeType) {
			return fmt.Errorf("%w: unsupported file type %q for %s", common.ErrInvalidInput, up.MimeType, up.FileName)
		}
	}
	return nil
}

func derefEvidence(items []*entity.ClaimEvidence) []entity.ClaimEvidence {
	out := make([]entity.ClaimEvidence, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
