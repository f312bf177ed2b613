package domain

// TargetFile is a path named on the command line together with the byte
// length observed when it was validated.
type TargetFile struct {
	Path string
	Size int64
}

// Outcome describes what happened to a single target.
type Outcome string

const (
	OutcomeMissing      Outcome = "missing"
	OutcomeStatFailed   Outcome = "stat-failed"
	OutcomeDirectory    Outcome = "directory"
	OutcomeDeclined     Outcome = "declined"
	OutcomeFilled       Outcome = "filled"
	OutcomeFillFailed   Outcome = "fill-failed"
	OutcomeDeleted      Outcome = "deleted"
	OutcomeDeleteFailed Outcome = "delete-failed"
)

// FileResult records the processing of one target.
type FileResult struct {
	Target  TargetFile
	Outcome Outcome
	Err     error
}

// ShredReport summarizes one invocation.
type ShredReport struct {
	Results []FileResult
}

// Count returns how many results ended with the given outcome.
func (r *ShredReport) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Errors returns the non-nil errors collected across all targets.
func (r *ShredReport) Errors() []error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}
