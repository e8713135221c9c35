// Package leads defines the lead capture entities and their enumerations.
// Leads are append-only: once captured they are never mutated or removed,
// and the newest-first ordering of the log is the canonical presentation
// order everywhere (admin table, export, stats).
package leads

import (
	"slices"
	"time"
)

// BuyingIntent is the visitor's stated purpose for the purchase.
type BuyingIntent string

const (
	BuyingForSelf       BuyingIntent = "Self"
	BuyingForInvestment BuyingIntent = "Investment"
)

// BudgetRanges is the fixed set of budget labels offered on the capture form.
var BudgetRanges = []string{
	"₹ 50L - ₹ 80L",
	"₹ 80L - ₹ 1.5 Cr",
	"₹ 1.5 Cr - ₹ 3 Cr",
	"₹ 3 Cr+",
}

// ConfigTypes is the fixed set of configuration-interest labels.
var ConfigTypes = []string{"1 BHK", "2 BHK", "3 BHK", "4 BHK+", "Villa/Plot"}

// Lead is a single capture event. ID and SubmittedAt are assigned exactly
// once at creation by the capture flow and are never client-supplied.
// ProjectID is empty for general-interest captures.
type Lead struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	BuyingFor        BuyingIntent `json:"buyingFor"`
	Budget           string       `json:"budget"`
	InterestedConfig string       `json:"interestedConfig"`
	SubmittedAt      time.Time    `json:"submittedAt"`
	ProjectID        string       `json:"projectId,omitempty"`
}

// ValidIntent reports whether v is one of the accepted buying intents.
func ValidIntent(v BuyingIntent) bool {
	return v == BuyingForSelf || v == BuyingForInvestment
}

// ValidBudget reports whether v is one of the enumerated budget ranges.
func ValidBudget(v string) bool {
	return slices.Contains(BudgetRanges, v)
}

// ValidConfigType reports whether v is one of the enumerated configuration
// types. The empty string is permitted: configuration interest is optional.
func ValidConfigType(v string) bool {
	return v == "" || slices.Contains(ConfigTypes, v)
}
