package utils

import "strings"

// ValidationResult reports every failing field from a single Validate pass.
type ValidationResult struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// defaultMessages are used when the caller's message map has no entry for a rule.
var defaultMessages = map[string]string{
	"required": ":attribute is required",
	"string":   ":attribute must be a string",
	"array":    ":attribute must be an array",
	"numeric":  ":attribute must be a number",
	"boolean":  ":attribute must be a boolean",
}

// Validate checks payload against a declarative rule set. Rules are per-field
// "|"-separated constraint lists, e.g. "required|string". Each field stops at
// its first failing constraint, but all failing fields are reported together.
// Messages substitute the field name for the ":attribute" placeholder.
func Validate(payload map[string]any, rules map[string]string, messages map[string]string) ValidationResult {
	errs := make(map[string]string)

	for field, ruleList := range rules {
		value, present := payload[field]

		for _, rule := range strings.Split(ruleList, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// Non-required constraints only apply when a value is present.
			if rule != "required" && (!present || value == nil) {
				continue
			}

			if !checkRule(rule, value, present) {
				errs[field] = renderMessage(rule, field, messages)
				break
			}
		}
	}

	if len(errs) > 0 {
		return ValidationResult{Success: false, Errors: errs}
	}
	return ValidationResult{Success: true}
}

func checkRule(rule string, value any, present bool) bool {
	switch rule {
	case "required":
		if !present || value == nil {
			return false
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return false
		}
		return true
	case "string":
		_, ok := value.(string)
		return ok
	case "array":
		// JSON arrays decode to []any; an empty array still counts.
		_, ok := value.([]any)
		return ok
	case "numeric":
		switch value.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	default:
		// Unknown constraints never fail a field.
		return true
	}
}

func renderMessage(rule, field string, messages map[string]string) string {
	tmpl, ok := messages[rule]
	if !ok {
		tmpl = defaultMessages[rule]
	}
	if tmpl == "" {
		tmpl = ":attribute is invalid"
	}
	return strings.ReplaceAll(tmpl, ":attribute", field)
}
