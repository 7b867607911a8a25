package entity

import (
	"strings"
	"time"
)

// Technique is a reusable generation technique linked to artworks.
// Description is premium content and is redacted with the prompt.
type Technique struct {
	ID          int64
	Name        string
	Description *string
}

// Artwork is one gallery piece. RawPrompt, RefinementNotes and technique
// descriptions together form its premium payload.
type Artwork struct {
	ID              string
	Title           string
	Category        string
	ImageSrc        string
	Published       bool
	SortOrder       int
	RawPrompt       *string
	RefinementNotes *string
	// PromptPrice overrides the default unlock price, in minor units.
	PromptPrice *int64
	Techniques  []Technique
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPremiumContent reports whether there is a prompt worth selling.
func (a *Artwork) HasPremiumContent() bool {
	return a.RawPrompt != nil && strings.TrimSpace(*a.RawPrompt) != ""
}

// Redacted returns a copy with every premium field nulled out.
func (a *Artwork) Redacted() *Artwork {
	out := *a
	out.RawPrompt = nil
	out.RefinementNotes = nil
	out.Techniques = make([]Technique, len(a.Techniques))
	for i, tech := range a.Techniques {
		out.Techniques[i] = Technique{ID: tech.ID, Name: tech.Name}
	}

	return &out
}
