package observability

import (
	"strconv"

	"github.com/fourxdev/fourxdev-api/internal/models"
)

// Pricing constants
const (
	tokensPerMillion    = 1000000.0
	costFormatPrecision = 6

	// Groq llama-3.1-8b-instant pricing
	llama318bInputPrice  = 0.05
	llama318bOutputPrice = 0.08

	// Groq llama-3.3-70b-versatile pricing
	llama3370bInputPrice  = 0.59
	llama3370bOutputPrice = 0.79

	// Gemini 2.5 Flash pricing
	gemini25FlashInputPrice  = 0.30
	gemini25FlashOutputPrice = 2.50
)

// ModelPricing contains pricing information per 1M tokens
type ModelPricing struct {
	InputPricePer1M  float64 // Price per 1M input tokens in USD
	OutputPricePer1M float64 // Price per 1M output tokens in USD
}

// PricingTable contains pricing for all models
var PricingTable = map[string]ModelPricing{
	"llama-3.1-8b-instant": {
		InputPricePer1M:  llama318bInputPrice,
		OutputPricePer1M: llama318bOutputPrice,
	},
	"llama-3.3-70b-versatile": {
		InputPricePer1M:  llama3370bInputPrice,
		OutputPricePer1M: llama3370bOutputPrice,
	},
	"gemini-2.5-flash": {
		InputPricePer1M:  gemini25FlashInputPrice,
		OutputPricePer1M: gemini25FlashOutputPrice,
	},
}

// CalculateCost calculates the cost in USD for one completion call
func CalculateCost(model string, usage models.TokenUsage) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		// Default to the cheapest Groq model when the model is unknown
		pricing = PricingTable["llama-3.1-8b-instant"]
	}

	inputCost := (float64(usage.InputTokens) / tokensPerMillion) * pricing.InputPricePer1M
	outputCost := (float64(usage.OutputTokens) / tokensPerMillion) * pricing.OutputPricePer1M

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
