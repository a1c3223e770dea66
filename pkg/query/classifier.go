package query

import (
	"context"
)

// Classifier maps free text to a structured QueryIntent. The core treats
// it as an opaque collaborator: it either returns an intent or fails
// with a classification error. A failure must short-circuit before any
// storage access; a guessed intent is never silently substituted.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Intent, error)
}
