package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIntent(t *testing.T) {
	assert.True(t, ValidIntent(BuyingForSelf))
	assert.True(t, ValidIntent(BuyingForInvestment))
	assert.False(t, ValidIntent(""))
	assert.False(t, ValidIntent("Rental"))
	assert.False(t, ValidIntent("self"))
}

func TestValidBudget(t *testing.T) {
	for _, budget := range BudgetRanges {
		assert.True(t, ValidBudget(budget), budget)
	}
	assert.False(t, ValidBudget(""))
	assert.False(t, ValidBudget("₹ 10L - ₹ 20L"))
}

func TestValidConfigType(t *testing.T) {
	for _, cfg := range ConfigTypes {
		assert.True(t, ValidConfigType(cfg), cfg)
	}
	assert.True(t, ValidConfigType(""), "configuration interest is optional")
	assert.False(t, ValidConfigType("5 BHK"))
}
