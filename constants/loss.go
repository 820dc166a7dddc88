package constants

// CauseOfLoss is the insured peril claimed to have caused the damage.
type CauseOfLoss string

const (
	LossWater     CauseOfLoss = "water"
	LossFire      CauseOfLoss = "fire"
	LossWind      CauseOfLoss = "wind"
	LossHail      CauseOfLoss = "hail"
	LossTheft     CauseOfLoss = "theft"
	LossVandalism CauseOfLoss = "vandalism"
	LossLightning CauseOfLoss = "lightning"
	LossCollapse  CauseOfLoss = "collapse"
	LossOther     CauseOfLoss = "other"
)

// CausesOfLoss lists every accepted cause for enum validation.
var CausesOfLoss = []string{
	string(LossWater),
	string(LossFire),
	string(LossWind),
	string(LossHail),
	string(LossTheft),
	string(LossVandalism),
	string(LossLightning),
	string(LossCollapse),
	string(LossOther),
}

// RepairCategories is the taxonomy the adjuster model assigns line items to.
var RepairCategories = []string{
	"roofing", "siding", "windows", "doors", "flooring", "drywall",
	"painting", "electrical", "plumbing", "hvac", "structural",
	"debris_removal", "temporary_repairs", "general_labor", "materials", "other",
}

// RecommendedActions are the accepted values for the adjuster recommendation.
var RecommendedActions = []string{
	"auto_approve", "approve_with_adjustment", "manual_review",
	"request_documentation", "escalate", "deny",
}
