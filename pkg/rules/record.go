package rules

import (
	"fmt"
	"math"
	"time"

	"valuation-catalog-be/internal/entity"
)

// FieldError reports one invalid observed value, keyed by variable code.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidateRecord checks a record of observed values (variable code -> value)
// against the given catalog variables. Only active variables accept values:
// a value for an inactive or unknown code is rejected as an unknown
// variable. Returns nil when the record is valid.
func ValidateRecord(variables []*entity.Variable, values map[string]interface{}) []FieldError {
	byCode := make(map[string]*entity.Variable, len(variables))
	for _, v := range variables {
		if v.IsActive {
			byCode[v.Code] = v
		}
	}

	var errs []FieldError

	for code := range values {
		if _, ok := byCode[code]; !ok {
			errs = append(errs, FieldError{Code: code, Message: "unknown variable"})
		}
	}

	for code, v := range byCode {
		value, present := values[code]
		if !present || value == nil {
			if v.IsRequired {
				errs = append(errs, FieldError{Code: code, Message: "value is required"})
			}
			continue
		}
		if msg := checkValue(Derive(v), value); msg != "" {
			errs = append(errs, FieldError{Code: code, Message: msg})
		}
	}

	return errs
}

func checkValue(d Descriptor, value interface{}) string {
	switch entity.DataType(d.Type) {
	case entity.DataTypeDecimal, entity.DataTypeInteger:
		num, ok := asNumber(value)
		if !ok {
			return "expected a numeric value"
		}
		if entity.DataType(d.Type) == entity.DataTypeInteger && num != math.Trunc(num) {
			return "expected an integer value"
		}
		if d.Min != nil && num < *d.Min {
			return fmt.Sprintf("value %v is below minimum %v", num, *d.Min)
		}
		if d.Max != nil && num > *d.Max {
			return fmt.Sprintf("value %v is above maximum %v", num, *d.Max)
		}
	case entity.DataTypeBoolean:
		if _, ok := value.(bool); !ok {
			return "expected a boolean value"
		}
	case entity.DataTypeDichotomous:
		// dummy variables take 0 or 1
		num, ok := asNumber(value)
		if !ok || (num != 0 && num != 1) {
			return "expected 0 or 1"
		}
	case entity.DataTypeText:
		if _, ok := value.(string); !ok {
			return "expected a text value"
		}
	case entity.DataTypeDate:
		s, ok := value.(string)
		if !ok {
			return "expected a date string"
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "expected a date in YYYY-MM-DD format"
		}
	case entity.DataTypeChoice, entity.DataTypeOrdinal, entity.DataTypeNominal:
		s, ok := value.(string)
		if !ok {
			return "expected a choice code"
		}
		if !d.HasChoice(s) {
			return fmt.Sprintf("%q is not an allowed option", s)
		}
	}
	return ""
}

// asNumber accepts the numeric shapes JSON decoding and Go callers produce.
func asNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
