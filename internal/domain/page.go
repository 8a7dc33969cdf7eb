package domain

// DefaultPageLimit and MaxPageLimit bound ListPage requests.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 200
)

// Page is one chunk of a keyset-paginated listing.
// NextCursor is empty when the page has no items.
type Page[T any] struct {
	Items      []T
	NextCursor string
	HasMore    bool
}

// ClampLimit normalizes a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageLimit
	case limit > MaxPageLimit:
		return MaxPageLimit
	default:
		return limit
	}
}
