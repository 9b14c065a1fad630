package constants

// AllowedPageSizes holds the page sizes the queue projection will serve.
var AllowedPageSizes = []int{25, 50, 100, 200}

// DefaultPageSize is used when the caller asks for zero or a negative size.
const DefaultPageSize = 50

// MaxBatchSize caps the number of items accepted by a single CreateJob call.
const MaxBatchSize = 5000

// MaxListLimit caps the limit of ListJobs; larger requests are silently capped.
const MaxListLimit = 500

// DefaultListLimit is used when ListJobs is called with limit <= 0.
const DefaultListLimit = 50

// ClampPageSize snaps a requested page size down to the largest allowed size
// that does not exceed it. Requests below the smallest allowed size, or
// non-positive requests, get the default.
func ClampPageSize(n int) int {
	if n <= 0 {
		return DefaultPageSize
	}
	clamped := 0
	for _, s := range AllowedPageSizes {
		if s <= n {
			clamped = s
		}
	}
	if clamped == 0 {
		return AllowedPageSizes[0]
	}
	return clamped
}
