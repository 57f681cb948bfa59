package heat

import "errors"

// Error kinds callers can branch on with errors.Is. The HTTP layer maps them
// to status codes; the scheduler only logs them.
var (
	// ErrNotFound: the alert, report or entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidState: the report is no longer pending. Never retried.
	ErrInvalidState = errors.New("report is not pending")

	// ErrUnsupportedType: the report declares a type no promotion branch
	// handles; the report is left untouched.
	ErrUnsupportedType = errors.New("unsupported report type")

	// ErrInconsistency: the promoted entity was created but the report
	// status flip failed. Flagged for manual remediation, never swallowed.
	ErrInconsistency = errors.New("entity created but report status update failed")
)
