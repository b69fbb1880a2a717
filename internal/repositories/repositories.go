package repositories

import "errors"

// PageSize is the fixed page size used by every paginated listing.
const PageSize = 10

// Sentinel errors surfaced by conditional writes. Services translate these
// into the API error taxonomy.
var (
	// ErrGigTaken means the gig was no longer ACTIVE when an accept was
	// attempted; some other application already claimed it.
	ErrGigTaken = errors.New("gig is not active")

	// ErrAlreadyDecided means the application left PENDING before this
	// decision ran.
	ErrAlreadyDecided = errors.New("application already decided")
)

func offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
