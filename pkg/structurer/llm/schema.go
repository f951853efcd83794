package llm

import (
	"github.com/morfeolab/morfeo/pkg/provider"
)

func responseSchema() *provider.Schema {
	strict := true

	return &provider.Schema{
		Name:        "medical_data",
		Description: "Standardized medical laboratory test results",

		Strict: &strict,

		Schema: map[string]any{
			"type": "object",

			"properties": map[string]any{
				"medical_fields": map[string]any{
					"type":        "array",
					"description": "List of analyzed medical fields",

					"items": map[string]any{
						"type": "object",

						"properties": map[string]any{
							"field_name": map[string]any{
								"type":        "string",
								"description": "Medical test name",
							},
							"field_value": map[string]any{
								"type":        "string",
								"description": "Test result value, converted to use dot as decimal separator",
							},
							"field_unit_of_measure": map[string]any{
								"type":        "string",
								"description": "Unit of measurement for the test value",
							},
							"reference_range_low": map[string]any{
								"type":        "string",
								"description": "Lower bound of the reference range",
							},
							"reference_range_high": map[string]any{
								"type":        "string",
								"description": "Upper bound of the reference range",
							},
						},

						"required": []string{
							"field_name",
							"field_value",
							"field_unit_of_measure",
							"reference_range_low",
							"reference_range_high",
						},

						"additionalProperties": false,
					},
				},
			},

			"required": []string{"medical_fields"},

			"additionalProperties": false,
		},
	}
}
