package entity

// LLMClaimAnalysis is the contract returned by the adjuster model. The field
// names and JSON keys are fixed; the model is prompted to produce exactly
// this shape and the adapter validates it before use.
type LLMClaimAnalysis struct {
	CoverageAnalysis     CoverageAnalysis     `json:"coverageAnalysis"`
	LineItemAssessments  []LineItemAssessment `json:"lineItemAssessments"`
	ValidationFlags      []ValidationFlag     `json:"validationFlags"`
	DamageAssessment     DamageAssessment     `json:"damageAssessment"`
	RecommendedAction    string               `json:"recommendedAction"`
	DepreciationAnalysis DepreciationAnalysis `json:"depreciationAnalysis"`
	AdjusterNarrative    string               `json:"adjusterNarrative"`
	ConfidenceScore      float64              `json:"confidenceScore"` // 0-100
}

// CoverageAnalysis is the financial block of an adjuster analysis.
type CoverageAnalysis struct {
	CoveredAmount    float64  `json:"coveredAmount"`
	NonCoveredAmount float64  `json:"nonCoveredAmount"`
	Depreciation     float64  `json:"depreciation"`
	Deductible       float64  `json:"deductible"`
	NetPayable       float64  `json:"netPayable"`
	CoverageNotes    []string `json:"coverageNotes"`
}

// LineItemAssessment is the adjuster model's view of one invoice line.
type LineItemAssessment struct {
	Description    string  `json:"description"`
	InvoicedAmount float64 `json:"invoicedAmount"`
	AssessedAmount float64 `json:"assessedAmount"`
	Category       string  `json:"category"`
	IsCovered      bool    `json:"isCovered"`
	Reasoning      string  `json:"reasoning"`
}

// DamageAssessment summarizes what the model observed in the evidence photos.
type DamageAssessment struct {
	ObservedDamageTypes    []string `json:"observedDamageTypes"`
	SeverityLevel          string   `json:"severityLevel"` // minor | moderate | severe | catastrophic
	ConsistentWithCause    bool     `json:"consistentWithCause"`
	ConsistencyNotes       string   `json:"consistencyNotes"`
	AdditionalObservations []string `json:"additionalObservations"`
}

// DepreciationAnalysis explains the depreciation the model applied.
type DepreciationAnalysis struct {
	Rate      float64 `json:"rate"` // 0-1
	Method    string  `json:"method"`
	Reasoning string  `json:"reasoning"`
}
