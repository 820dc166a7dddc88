package processor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/coverage"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/extract"
	"github.com/insurtech-labs/claims-adjudicator/internal/llm"
	"github.com/insurtech-labs/claims-adjudicator/internal/ocr"
	"github.com/insurtech-labs/claims-adjudicator/internal/repository"
	"github.com/insurtech-labs/claims-adjudicator/internal/storage"
)

type fakeClaimRepo struct {
	claims map[uuid.UUID]*entity.Claim
}

func (r *fakeClaimRepo) Create(context.Context, *repository.CreateClaimRequest) (*entity.Claim, error) {
	panic("not used")
}

func (r *fakeClaimRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Claim, error) {
	c, ok := r.claims[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClaimRepo) GetByNumber(context.Context, string) (*entity.Claim, error) {
	panic("not used")
}

func (r *fakeClaimRepo) List(context.Context, int, int) ([]*entity.Claim, int, error) {
	panic("not used")
}

func (r *fakeClaimRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.ClaimStatus) (*entity.Claim, error) {
	c, ok := r.claims[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c.Status = status
	cp := *c
	return &cp, nil
}

func (r *fakeClaimRepo) SetAnalysis(_ context.Context, id uuid.UUID, analysis json.RawMessage) error {
	c, ok := r.claims[id]
	if !ok {
		return common.ErrNotFound
	}
	c.Analysis = analysis
	return nil
}

type fakeInvoiceRepo struct {
	invoices []*entity.ClaimInvoice
}

func (r *fakeInvoiceRepo) find(id uuid.UUID) *entity.ClaimInvoice {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) Create(_ context.Context, claimID uuid.UUID, fileName, fileType string, fileSize int) (*entity.ClaimInvoice, error) {
	inv := &entity.ClaimInvoice{
		ID:               uuid.New(),
		ClaimID:          claimID,
		FileName:         fileName,
		FileType:         fileType,
		FileSize:         fileSize,
		Currency:         "USD",
		ValidationStatus: constants.ValidationPending,
	}
	r.invoices = append(r.invoices, inv)
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ClaimInvoice, error) {
	if inv := r.find(id); inv != nil {
		cp := *inv
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeInvoiceRepo) ListByClaim(_ context.Context, claimID uuid.UUID) ([]*entity.ClaimInvoice, error) {
	var out []*entity.ClaimInvoice
	for _, inv := range r.invoices {
		if inv.ClaimID == claimID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateOCR(_ context.Context, id uuid.UUID, data *extract.ParsedInvoiceData, raw json.RawMessage) (*entity.ClaimInvoice, error) {
	inv := r.find(id)
	if inv == nil {
		return nil, common.ErrNotFound
	}
	now := time.Now()
	inv.VendorName = data.VendorName
	inv.InvoiceDate = data.InvoiceDate
	inv.TotalAmount = data.TotalAmount
	inv.OCRConfidence = data.Confidence
	inv.OCRRawData = raw
	inv.ProcessedAt = &now
	if data.Currency != "" {
		inv.Currency = data.Currency
	}
	if len(data.LineItems) > 0 {
		items, err := json.Marshal(data.LineItems)
		if err != nil {
			return nil, err
		}
		inv.LineItems = items
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) UpdateValidation(_ context.Context, id uuid.UUID, flags []entity.ValidationFlag, status constants.ValidationStatus) error {
	inv := r.find(id)
	if inv == nil {
		return common.ErrNotFound
	}
	inv.ValidationFlags = flags
	inv.ValidationStatus = status
	return nil
}

func (r *fakeInvoiceRepo) UpdateCoverage(_ context.Context, id uuid.UUID, b coverage.Breakdown, adjudication constants.AdjudicationStatus) error {
	inv := r.find(id)
	if inv == nil {
		return common.ErrNotFound
	}
	inv.CoveredAmount = &b.CoveredAmount
	inv.NonCoveredAmount = &b.NonCoveredAmount
	inv.Depreciation = &b.Depreciation
	inv.Deductible = &b.Deductible
	inv.RecommendedPayout = &b.RecommendedPayout
	inv.AdjudicationStatus = &adjudication
	return nil
}

func (r *fakeInvoiceRepo) SetAnalysis(_ context.Context, id uuid.UUID, analysis json.RawMessage) error {
	inv := r.find(id)
	if inv == nil {
		return common.ErrNotFound
	}
	inv.Analysis = analysis
	return nil
}

type fakeEvidenceRepo struct {
	items []*entity.ClaimEvidence
}

func (r *fakeEvidenceRepo) Create(_ context.Context, claimID uuid.UUID, fileName, fileType, filePath string, fileSize int, evidenceType string) (*entity.ClaimEvidence, error) {
	ev := &entity.ClaimEvidence{
		ID:           uuid.New(),
		ClaimID:      claimID,
		FileName:     fileName,
		FileType:     fileType,
		FilePath:     filePath,
		FileSize:     fileSize,
		EvidenceType: evidenceType,
		CreatedAt:    time.Now(),
	}
	r.items = append(r.items, ev)
	return ev, nil
}

func (r *fakeEvidenceRepo) ListByClaim(_ context.Context, claimID uuid.UUID) ([]*entity.ClaimEvidence, error) {
	var out []*entity.ClaimEvidence
	for _, ev := range r.items {
		if ev.ClaimID == claimID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// fakeAnalyzer returns one scripted result per call, in order.
type fakeAnalyzer struct {
	results []*ocr.AnalyzeResult
	err     error
	calls   int
}

func (a *fakeAnalyzer) AnalyzeInvoice(_ context.Context, _ []byte, _ string) (*ocr.AnalyzeResult, json.RawMessage, error) {
	a.calls++
	if a.err != nil && a.calls > len(a.results) {
		return nil, nil, a.err
	}
	res := a.results[a.calls-1]
	raw, _ := json.Marshal(res)
	return res, raw, nil
}

type fakeAdjuster struct {
	analysis entity.LLMClaimAnalysis
	calls    int
	invoices int
	images   int
}

func (a *fakeAdjuster) Analyze(_ context.Context, _ llm.ClaimContext, invoices []llm.InvoiceData, images []llm.EvidenceImage) entity.LLMClaimAnalysis {
	a.calls++
	a.invoices = len(invoices)
	a.images = len(images)
	return a.analysis
}

func invoiceResult(vendor, date string, total float64) *ocr.AnalyzeResult {
	return &ocr.AnalyzeResult{
		Status: "succeeded",
		AnalyzeResult: &ocr.AnalyzeBody{
			Documents: []ocr.Document{{Fields: map[string]ocr.Field{
				"VendorName":   {ValueString: &vendor},
				"InvoiceDate":  {ValueDate: &date},
				"InvoiceTotal": {ValueCurrency: &ocr.Currency{Amount: total, CurrencyCode: "USD"}},
			}}},
		},
	}
}

func newTestProcessor(t *testing.T, claims *fakeClaimRepo, invoices *fakeInvoiceRepo, evidence *fakeEvidenceRepo, analyzer *fakeAnalyzer, adjuster *fakeAdjuster) *Processor {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewProcessor(nil, claims, invoices, evidence, analyzer, adjuster, store)
}

func newTestClaim() *entity.Claim {
	return &entity.Claim{
		ID:          uuid.New(),
		ClaimNumber: "CLM-2024-0001",
		DateOfLoss:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CauseOfLoss: constants.LossWind,
		Status:      constants.ClaimStatusPending,
	}
}

func TestProcessDocumentsFullPipeline(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	invoices := &fakeInvoiceRepo{}
	evidence := &fakeEvidenceRepo{}
	analyzer := &fakeAnalyzer{results: []*ocr.AnalyzeResult{
		invoiceResult("ABC Roofing LLC", "2024-03-20", 10_000),
	}}
	adjuster := &fakeAdjuster{}

	p := newTestProcessor(t, claims, invoices, evidence, analyzer, adjuster)
	result, err := p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Invoices: []UploadFile{{FileName: "invoice.pdf", MimeType: "application/pdf", Data: []byte("%PDF")}},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.ClaimStatusInProgress, result.Claim.Status)
	require.Len(t, result.Invoices, 1)

	inv := result.Invoices[0]
	require.NotNil(t, inv.VendorName)
	assert.Equal(t, "ABC Roofing LLC", *inv.VendorName)
	require.NotNil(t, inv.TotalAmount)
	assert.InDelta(t, 10_000, *inv.TotalAmount, 0.001)
	assert.NotNil(t, inv.ProcessedAt)
	assert.NotEmpty(t, inv.OCRRawData)

	// round $10,000 gets the info flag but still passes
	assert.Equal(t, constants.ValidationPassed, inv.ValidationStatus)
	require.Len(t, inv.ValidationFlags, 1)
	assert.Equal(t, "SUSPICIOUS_ROUND_AMOUNT", inv.ValidationFlags[0].Code)

	require.NotNil(t, inv.RecommendedPayout)
	assert.InDelta(t, 6650, *inv.RecommendedPayout, 0.001)
	require.NotNil(t, inv.AdjudicationStatus)
	assert.Equal(t, constants.RecommendedApprove, *inv.AdjudicationStatus)

	// no analysis was requested
	assert.Zero(t, adjuster.calls)
	assert.Empty(t, result.Claim.Analysis)
}

func TestProcessDocumentsRunsAnalysisAndBroadcasts(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	invoices := &fakeInvoiceRepo{}
	evidence := &fakeEvidenceRepo{}
	analyzer := &fakeAnalyzer{results: []*ocr.AnalyzeResult{
		invoiceResult("ABC Roofing LLC", "2024-03-20", 6_000),
		invoiceResult("Springfield Plumbing", "2024-03-22", 2_500),
	}}
	adjuster := &fakeAdjuster{analysis: entity.LLMClaimAnalysis{
		CoverageAnalysis: entity.CoverageAnalysis{
			CoveredAmount:    7_000,
			NonCoveredAmount: 1_500,
			Depreciation:     700,
			Deductible:       1_000,
			NetPayable:       5_300,
		},
		RecommendedAction: "approve_with_adjustment",
		AdjusterNarrative: "Consistent with the reported loss.",
		ConfidenceScore:   85,
	}}

	p := newTestProcessor(t, claims, invoices, evidence, analyzer, adjuster)
	result, err := p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Invoices: []UploadFile{
			{FileName: "roof.pdf", MimeType: "application/pdf", Data: []byte("a")},
			{FileName: "plumbing.pdf", MimeType: "application/pdf", Data: []byte("b")},
		},
		RunAnalysis: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, adjuster.calls)
	assert.Equal(t, 2, adjuster.invoices)

	// the one analysis lands on the claim and on every invoice
	require.NotEmpty(t, result.Claim.Analysis)
	var persisted entity.LLMClaimAnalysis
	require.NoError(t, json.Unmarshal(result.Claim.Analysis, &persisted))
	assert.Equal(t, "approve_with_adjustment", persisted.RecommendedAction)

	// invoices come back in upload order
	require.Len(t, result.Invoices, 2)
	assert.Equal(t, "roof.pdf", result.Invoices[0].FileName)
	assert.Equal(t, "plumbing.pdf", result.Invoices[1].FileName)
	for _, inv := range result.Invoices {
		assert.Equal(t, result.Claim.Analysis, inv.Analysis, "invoice %s", inv.FileName)
		require.NotNil(t, inv.RecommendedPayout)
		// payout recomputed from the analysis components
		assert.InDelta(t, 5_300, *inv.RecommendedPayout, 0.001)
		require.NotNil(t, inv.AdjudicationStatus)
		assert.Equal(t, constants.RecommendedApprove, *inv.AdjudicationStatus)
	}
}

func TestProcessDocumentsMissingTotalStillGetsCoverage(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	invoices := &fakeInvoiceRepo{}

	vendor := "ABC Roofing LLC"
	date := "2024-03-20"
	analyzer := &fakeAnalyzer{results: []*ocr.AnalyzeResult{{
		Status: "succeeded",
		AnalyzeResult: &ocr.AnalyzeBody{
			Documents: []ocr.Document{{Fields: map[string]ocr.Field{
				"VendorName":  {ValueString: &vendor},
				"InvoiceDate": {ValueDate: &date},
			}}},
		},
	}}}

	p := newTestProcessor(t, claims, invoices, &fakeEvidenceRepo{}, analyzer, &fakeAdjuster{})
	result, err := p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Invoices: []UploadFile{{FileName: "no-total.pdf", MimeType: "application/pdf", Data: []byte("%PDF")}},
	})
	require.NoError(t, err)

	require.Len(t, result.Invoices, 1)
	inv := result.Invoices[0]
	assert.Nil(t, inv.TotalAmount)
	assert.Equal(t, constants.ValidationFailed, inv.ValidationStatus)

	// the zero-total breakdown: nothing covered, full deductible, payout zero
	require.NotNil(t, inv.CoveredAmount)
	assert.Zero(t, *inv.CoveredAmount)
	require.NotNil(t, inv.Deductible)
	assert.InDelta(t, 1000, *inv.Deductible, 0.001)
	require.NotNil(t, inv.RecommendedPayout)
	assert.Zero(t, *inv.RecommendedPayout)
	require.NotNil(t, inv.AdjudicationStatus)
	assert.Equal(t, constants.RecommendedReview, *inv.AdjudicationStatus)
}

func TestProcessDocumentsHaltsOnAnalyzerFailure(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	invoices := &fakeInvoiceRepo{}
	analyzer := &fakeAnalyzer{
		results: []*ocr.AnalyzeResult{invoiceResult("ABC Roofing LLC", "2024-03-20", 500)},
		err:     errors.New("document analysis failed"),
	}

	p := newTestProcessor(t, claims, invoices, &fakeEvidenceRepo{}, analyzer, &fakeAdjuster{})
	_, err := p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Invoices: []UploadFile{
			{FileName: "ok.pdf", MimeType: "application/pdf", Data: []byte("a")},
			{FileName: "broken.pdf", MimeType: "application/pdf", Data: []byte("b")},
			{FileName: "never-reached.pdf", MimeType: "application/pdf", Data: []byte("c")},
		},
	})
	require.ErrorIs(t, err, common.ErrUpstream)

	// the first invoice kept its results, the second exists unprocessed,
	// the third was never created
	assert.Equal(t, 2, analyzer.calls)
	require.Len(t, invoices.invoices, 2)
	assert.NotNil(t, invoices.invoices[0].VendorName)
	assert.Nil(t, invoices.invoices[1].VendorName)

	// the claim stays in progress for manual follow-up
	assert.Equal(t, constants.ClaimStatusInProgress, claim.Status)
}

func TestProcessDocumentsUnknownClaim(t *testing.T) {
	p := newTestProcessor(t, &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{}}, &fakeInvoiceRepo{}, &fakeEvidenceRepo{}, &fakeAnalyzer{}, &fakeAdjuster{})

	_, err := p.ProcessDocuments(context.Background(), uuid.New(), ProcessRequest{
		Invoices: []UploadFile{{FileName: "a.pdf", MimeType: "application/pdf", Data: []byte("a")}},
	})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestProcessDocumentsRejectsBadUploads(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	p := newTestProcessor(t, claims, &fakeInvoiceRepo{}, &fakeEvidenceRepo{}, &fakeAnalyzer{}, &fakeAdjuster{})

	_, err := p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Invoices: []UploadFile{{FileName: "notes.txt", MimeType: "text/plain", Data: []byte("hello")}},
	})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Invoices: []UploadFile{{FileName: "empty.pdf", MimeType: "application/pdf"}},
	})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	// nothing was created and the status never moved
	assert.Equal(t, constants.ClaimStatusPending, claim.Status)
}

func TestProcessDocumentsStoresEvidence(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	evidence := &fakeEvidenceRepo{}
	adjuster := &fakeAdjuster{}

	p := newTestProcessor(t, claims, &fakeInvoiceRepo{}, evidence, &fakeAnalyzer{}, adjuster)
	_, err := p.ProcessDocuments(context.Background(), claim.ID, ProcessRequest{
		Evidence: []UploadFile{
			{FileName: "roof-damage.jpg", MimeType: "image/jpeg", Data: []byte("jpeg-bytes")},
		},
		RunAnalysis: true,
	})
	require.NoError(t, err)

	require.Len(t, evidence.items, 1)
	assert.Equal(t, "roof-damage.jpg", evidence.items[0].FileName)
	assert.Equal(t, "damage_photo", evidence.items[0].EvidenceType)

	// the stored photo is attached to the analysis request
	assert.Equal(t, 1, adjuster.calls)
	assert.Equal(t, 1, adjuster.images)
}

func TestReanalyzeUsesPersistedFields(t *testing.T) {
	claim := newTestClaim()
	claims := &fakeClaimRepo{claims: map[uuid.UUID]*entity.Claim{claim.ID: claim}}
	invoices := &fakeInvoiceRepo{}
	analyzer := &fakeAnalyzer{}
	adjuster := &fakeAdjuster{}

	vendor := "ABC Roofing LLC"
	total := 4_200.0
	inv, err := invoices.Create(context.Background(), claim.ID, "roof.pdf", "application/pdf", 4)
	require.NoError(t, err)
	stored := invoices.find(inv.ID)
	stored.VendorName = &vendor
	stored.TotalAmount = &total
	stored.LineItems = json.RawMessage(`[{"description":"Shingles","amount":4200}]`)

	p := newTestProcessor(t, claims, invoices, &fakeEvidenceRepo{}, analyzer, adjuster)
	_, err = p.Reanalyze(context.Background(), claim.ID)
	require.NoError(t, err)

	// no OCR happened, only the analysis
	assert.Zero(t, analyzer.calls)
	assert.Equal(t, 1, adjuster.calls)
	assert.Equal(t, 1, adjuster.invoices)
}
