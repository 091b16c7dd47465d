package reconciler

// Test hooks for the unexported merge primitives
var (
	MergeTransaction = mergeTransaction
	Compensate       = compensate
)

type MergeOutcome = mergeOutcome

const (
	OutcomeCreated   = outcomeCreated
	OutcomeAdopted   = outcomeAdopted
	OutcomeUnchanged = outcomeUnchanged
)
