package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a senior property insurance claims adjuster with 20 years of experience. Your role is to analyze claim documentation (contractor invoices and damage evidence photos) and produce a professional claims assessment.

You must apply industry-standard practices including:
- Xactimate-comparable pricing validation for repair items
- Cause-of-loss consistency analysis (does the damage match the stated cause?)
- ACV (Actual Cash Value) depreciation methodology
- Standard deductible application
- Identification of potentially non-covered items
- Detection of pricing anomalies or inflated costs

IMPORTANT: You must return ONLY valid JSON matching the exact schema provided. No markdown, no explanations outside the JSON.`

// strictSuffix is appended to the system prompt on the retry attempt.
const strictSuffix = "\n\nCRITICAL: Return ONLY the JSON object. No text before or after. No markdown code blocks."

// buildUserPrompt assembles the single text prompt: claim context, one
// section per invoice, the image instruction block, and the JSON output
// schema the model must satisfy exactly.
func buildUserPrompt(claim ClaimContext, invoices []InvoiceData, hasImages bool) string {
	var b strings.Builder

	b.WriteString("\n## CLAIM INFORMATION\n")
	fmt.Fprintf(&b, "- Claim Number: %s\n", claim.ClaimNumber)
	fmt.Fprintf(&b, "- Policy Number: %s\n", claim.PolicyNumber)
	fmt.Fprintf(&b, "- Claimant: %s\n", claim.ClaimantName)
	fmt.Fprintf(&b, "- Property Address: %s\n", claim.PropertyAddress)
	fmt.Fprintf(&b, "- Date of Loss: %s\n", claim.DateOfLoss)
	fmt.Fprintf(&b, "- Cause of Loss: %s\n", claim.CauseOfLoss)

	b.WriteString("\n## CONTRACTOR INVOICES\n")
	for i, inv := range invoices {
		fmt.Fprintf(&b, "\n### Invoice %d\n", i+1)
		fmt.Fprintf(&b, "- Vendor: %s\n", strOr(inv.VendorName, "Unknown"))
		fmt.Fprintf(&b, "- Address: %s\n", strOr(inv.VendorAddress, "N/A"))
		fmt.Fprintf(&b, "- Invoice #: %s\n", strOr(inv.InvoiceNumber, "N/A"))
		fmt.Fprintf(&b, "- Invoice Date: %s\n", strOr(inv.InvoiceDate, "N/A"))
		fmt.Fprintf(&b, "- Total Amount: $%v\n", numOr(inv.TotalAmount, 0))
		b.WriteString("- Line Items:\n")
		if len(inv.LineItems) == 0 {
			b.WriteString("  No line items extracted\n")
			continue
		}
		for j, item := range inv.LineItems {
			desc := item.Description
			if desc == "" {
				desc = "Unknown item"
			}
			fmt.Fprintf(&b, "  %d. %s - Qty: %v, Unit: $%v, Total: $%v\n",
				j+1, desc, numOr(item.Quantity, 1), numOr(item.UnitPrice, 0), numOr(item.Amount, 0))
		}
	}

	if hasImages {
		b.WriteString("\n## DAMAGE EVIDENCE\nAnalyze the attached damage evidence photos. Assess the visible damage type, severity, and whether it is consistent with the stated cause of loss.\n")
	} else {
		b.WriteString("\n## DAMAGE EVIDENCE\nNo damage photos provided. Base your damage assessment solely on the invoice line items and stated cause of loss. Note the lack of photographic evidence in your assessment.\n")
	}

	b.WriteString(outputSchema)
	return b.String()
}

const outputSchema = `
## REQUIRED JSON OUTPUT
Return ONLY a JSON object with this exact structure:
{
  "coverageAnalysis": {
    "coveredAmount": <number - total covered repair costs>,
    "nonCoveredAmount": <number - non-covered items total>,
    "depreciation": <number - depreciation deduction>,
    "deductible": <number - policy deductible amount, typically $1000-2500>,
    "netPayable": <number - final recommended payout>,
    "coverageNotes": [<string array - brief coverage notes>]
  },
  "lineItemAssessments": [
    {
      "description": "<item description>",
      "invoicedAmount": <number>,
      "assessedAmount": <number - your assessed fair value>,
      "category": "<one of: roofing, siding, windows, doors, flooring, drywall, painting, electrical, plumbing, hvac, structural, debris_removal, temporary_repairs, general_labor, materials, other>",
      "isCovered": <boolean>,
      "reasoning": "<brief explanation>"
    }
  ],
  "validationFlags": [
    {
      "code": "<flag code>",
      "severity": "<info|warning|error>",
      "message": "<description>",
      "field": "<optional field name>"
    }
  ],
  "damageAssessment": {
    "observedDamageTypes": [<string array>],
    "severityLevel": "<minor|moderate|severe|catastrophic>",
    "consistentWithCause": <boolean>,
    "consistencyNotes": "<explanation>",
    "additionalObservations": [<string array>]
  },
  "recommendedAction": "<auto_approve|approve_with_adjustment|manual_review|request_documentation|escalate|deny>",
  "depreciationAnalysis": {
    "rate": <number 0-1>,
    "method": "<depreciation method used>",
    "reasoning": "<explanation>"
  },
  "adjusterNarrative": "<2-4 sentence professional narrative summarizing the claim assessment>",
  "confidenceScore": <number 0-100>
}`

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func numOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
