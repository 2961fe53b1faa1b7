package prompt

import "fmt"

// Variation is one fixed instruction fragment appended to the user's base
// prompt to bias the model toward a distinct stylistic outcome.
type Variation struct {
	Label       string
	Instruction string
}

// Variations returns the four fixed variations, in display order. The first
// one is intentionally empty: the standard version gets the bare prompt.
func Variations() []Variation {
	return []Variation{
		{Label: "Standard Version", Instruction: ""},
		{Label: "Visual Focus", Instruction: "Make it visually appealing and use a different framework than the other versions."},
		{Label: "Minimalist Version", Instruction: "Focus on simplicity and performance. Use minimal dependencies."},
		{Label: "Creative Approach", Instruction: "Add some creative features that might not be explicitly mentioned in the prompt."},
	}
}

const instructionTemplate = `Create a simple, self-contained web application based on this prompt:
%s
%s

The code should be complete and runnable as a single file.
Focus on creating a working prototype that demonstrates the core functionality.
Use modern web technologies and best practices.
Keep the code concise but include helpful comments.
Return ONLY the code without explanations.`

// Builder builds the model instruction for one variant call.
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build concatenates the base prompt and the variation instruction into the
// fixed wrapper. Deterministic: the same inputs always produce the same
// string, so a slot's instruction depends only on (basePrompt, variation).
func (b *Builder) Build(basePrompt, variation string) string {
	return fmt.Sprintf(instructionTemplate, basePrompt, variation)
}
