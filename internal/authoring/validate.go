package authoring

import "fmt"

// ValidationError describes why a draft failed validation.
type ValidationError struct {
	// Index is the draft's position in the batch.
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft %d: %s", e.Index, e.Message)
}

// ValidateDraft checks a single draft for structural soundness. Callers
// must validate before persisting; the adapter does not enforce this on
// the wire.
func ValidateDraft(d Draft) error {
	if d.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown question type %q", d.Type)
	}
	if !d.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", d.Difficulty)
	}
	if len(d.Options) < 2 {
		return fmt.Errorf("got %d options, need at least 2", len(d.Options))
	}
	correct := 0
	for _, opt := range d.Options {
		if opt.Text == "" {
			return fmt.Errorf("empty option text")
		}
		if opt.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("got %d correct options, want exactly 1", correct)
	}
	return nil
}

// FilterValid splits a batch into valid drafts and per-draft errors.
func FilterValid(drafts []Draft) ([]Draft, []error) {
	var (
		valid []Draft
		errs  []error
	)
	for i, d := range drafts {
		if err := ValidateDraft(d); err != nil {
			errs = append(errs, &ValidationError{Index: i, Message: err.Error()})
			continue
		}
		valid = append(valid, d)
	}
	return valid, errs
}
