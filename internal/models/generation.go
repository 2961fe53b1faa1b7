package models

import "fmt"

// TokenUsage aggregates token counts reported by a provider.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Add accumulates another usage report into this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// PanelResult is one slot of the 2x2 result grid. Exactly four are produced
// per generation, in the order the variations are declared. A failed call
// fills the slot with its error instead of aborting the batch.
type PanelResult struct {
	Index      int        `json:"index"`
	Label      string     `json:"label"`
	Variation  string     `json:"variation"`
	Code       string     `json:"code"`
	Error      string     `json:"error,omitempty"`
	Usage      TokenUsage `json:"usage"`
	DurationMS int64      `json:"duration_ms"`

	// Err retains the typed error for callers that need to distinguish
	// failure kinds; Error above is its display form.
	Err error `json:"-"`
}

// GenerationBatch is the outcome of one four-variant generation run.
type GenerationBatch struct {
	Model      string        `json:"model"`
	Results    []PanelResult `json:"results"`
	Usage      TokenUsage    `json:"usage"`
	DurationMS int64         `json:"duration_ms"`
}

// FailedCount returns how many of the batch's slots failed.
func (b *GenerationBatch) FailedCount() int {
	failed := 0
	for i := range b.Results {
		if b.Results[i].Failed() {
			failed++
		}
	}
	return failed
}

// Failed reports whether this slot's completion call failed.
func (r *PanelResult) Failed() bool {
	return r.Err != nil
}

// DisplayText returns the text to render in the panel: the generated code,
// or the in-band error placeholder when the call failed.
func (r *PanelResult) DisplayText() string {
	if r.Err != nil {
		return fmt.Sprintf("Error generating code: %s", r.Err.Error())
	}
	return r.Code
}
