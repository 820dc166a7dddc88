package llm

// analysisJSONSchema is the contract the model response must satisfy before
// the adapter accepts it. Required top-level fields mirror the parse-failure
// rule: an object missing the coverage block, the recommendation, or the
// narrative is treated as unparseable. Extra fields are tolerated; the model
// occasionally volunteers them and they are harmless.
func analysisJSONSchema() map[string]any {
	severity := map[string]any{"type": "string", "enum": []string{"info", "warning", "error"}}

	return map[string]any{
		"type":     "object",
		"required": []string{"coverageAnalysis", "recommendedAction", "adjusterNarrative"},
		"properties": map[string]any{
			"coverageAnalysis": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"coveredAmount":    map[string]any{"type": "number"},
					"nonCoveredAmount": map[string]any{"type": "number"},
					"depreciation":     map[string]any{"type": "number"},
					"deductible":       map[string]any{"type": "number"},
					"netPayable":       map[string]any{"type": "number"},
					"coverageNotes":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
			"lineItemAssessments": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description":    map[string]any{"type": "string"},
						"invoicedAmount": map[string]any{"type": "number"},
						"assessedAmount": map[string]any{"type": "number"},
						"category":       map[string]any{"type": "string"},
						"isCovered":      map[string]any{"type": "boolean"},
						"reasoning":      map[string]any{"type": "string"},
					},
				},
			},
			"validationFlags": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"code":     map[string]any{"type": "string"},
						"severity": severity,
						"message":  map[string]any{"type": "string"},
						"field":    map[string]any{"type": "string"},
					},
				},
			},
			"damageAssessment": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"observedDamageTypes":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"severityLevel":          map[string]any{"type": "string"},
					"consistentWithCause":    map[string]any{"type": "boolean"},
					"consistencyNotes":       map[string]any{"type": "string"},
					"additionalObservations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
			"recommendedAction": map[string]any{"type": "string", "minLength": 1},
			"depreciationAnalysis": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"rate":      map[string]any{"type": "number"},
					"method":    map[string]any{"type": "string"},
					"reasoning": map[string]any{"type": "string"},
				},
			},
			"adjusterNarrative": map[string]any{"type": "string", "minLength": 1},
			"confidenceScore":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
		},
	}
}
