package widget

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// layoutSchema describes the structural expectations of a layout document.
// Validation is advisory: findings are surfaced as warnings on the parsed
// layout, never as errors, because partially specified widgets are valid
// input to the engine.
var layoutSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"widgets": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"id":          {Type: "string"},
					"type":        {Type: "string"},
					"xAxis":       {Type: "string"},
					"yAxis":       {Type: "string"},
					"field":       {Type: "string"},
					"legend":      {Type: "string"},
					"aggregation": {Type: "string"},
					"filterField": {Type: "string"},
					"selectedFilters": {
						Type:  "array",
						Items: &jsonschema.Schema{Type: "string"},
					},
					"datasetId": {Type: "string"},
					"title":     {Type: "string"},
				},
			},
		},
	},
	Required: []string{"widgets"},
}

// validateLayout runs the advisory schema check over the raw document and
// renders any finding as a warning string.
func validateLayout(data []byte) []string {
	resolved, err := layoutSchema.Resolve(nil)
	if err != nil {
		log.Warn().Err(err).Msg("Layout schema failed to resolve, skipping validation")
		return nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("layout is not valid JSON: %v", err)}
	}

	if err := resolved.Validate(doc); err != nil {
		return []string{fmt.Sprintf("layout schema: %v", err)}
	}
	return nil
}
