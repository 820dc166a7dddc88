package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func contractSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(analysisJSONSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("analysis.json", bytes.NewReader(b)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("analysis.json")
	})
	return compiledSchema, compileErr
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a json language tag, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseAnalysis decodes a model response into the analysis contract.
// A syntax error, a schema violation, or a missing required top-level field
// all count as parse failures and are candidates for the strict retry.
func parseAnalysis(content string) (entity.LLMClaimAnalysis, error) {
	var out entity.LLMClaimAnalysis

	raw := []byte(stripCodeFence(content))

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return out, fmt.Errorf("decode analysis: %w", err)
	}

	schema, err := contractSchema()
	if err != nil {
		return out, err
	}
	if err := schema.Validate(doc); err != nil {
		return out, fmt.Errorf("analysis does not match contract: %w", err)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return out, nil
}
