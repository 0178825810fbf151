package model

import "fmt"

// ValidationResult reports every rule violation found in an invoice, in the
// order the rules are checked. It is the expected, user-correctable outcome;
// rendering is only attempted when IsValid is true.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks the required-field rules and collects all violations
// rather than stopping at the first:
//
//   - sender and client names are required
//   - at least one line item is required
//   - every item needs a description, a quantity > 0 and a unit price >= 0
func (inv *Invoice) Validate() ValidationResult {
	errors := []string{}

	if inv.From.Name == "" {
		errors = append(errors, "Sender name is required")
	}
	if inv.To.Name == "" {
		errors = append(errors, "Client name is required")
	}
	if len(inv.Items) == 0 {
		errors = append(errors, "At least one item is required")
	}

	for i, item := range inv.Items {
		if item.Description == "" {
			errors = append(errors, fmt.Sprintf("Item %d: Description is required", i+1))
		}
		if item.Quantity <= 0 {
			errors = append(errors, fmt.Sprintf("Item %d: Valid quantity is required", i+1))
		}
		if item.UnitPrice < 0 {
			errors = append(errors, fmt.Sprintf("Item %d: Valid unit price is required", i+1))
		}
	}

	return ValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}
