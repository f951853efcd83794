package structurer

import (
	"context"
	"errors"

	"github.com/morfeolab/morfeo/pkg/extractor"
)

// ErrStructuring marks a structuring call that failed or whose output could
// not be coerced into the medical-field schema. The batch is all-or-nothing.
var ErrStructuring = errors.New("structuring failed")

type Provider interface {
	Structure(ctx context.Context, rows []extractor.Row) ([]Field, error)
}

// Field is one standardized lab-test result. Numeric values and range bounds
// use dot-decimal notation regardless of the source locale; open range
// bounds are empty strings; fields that could not be determined are "N/A".
type Field struct {
	Name  string `json:"field_name"`
	Value string `json:"field_value"`
	Unit  string `json:"field_unit_of_measure"`

	RangeLow  string `json:"reference_range_low"`
	RangeHigh string `json:"reference_range_high"`
}
