// Package connectory drives the artist directory view on the client:
// filter state, debounced fetching, result status and column layout.
package connectory

// Status is what the directory view shows in place of, or next to, its results.
type Status string

const (
	StatusLoading   Status = "loading"
	StatusPopulated Status = "populated"
	StatusEmpty     Status = "empty"
	StatusError     Status = "error"
)

// ResolveStatus maps the fetch state to a view status. A request in
// flight wins over everything else.
func ResolveStatus(inFlight bool, err error, count int) Status {
	switch {
	case inFlight:
		return StatusLoading
	case err != nil:
		return StatusError
	case count == 0:
		return StatusEmpty
	default:
		return StatusPopulated
	}
}
