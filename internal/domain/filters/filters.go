package filters

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filters carries offset/limit pagination decoded from query parameters.
// Listing order is always insertion order (ascending id).
type Filters struct {
	Offset int `schema:"offset" validate:"gte=0"`
	Limit  int `schema:"limit" validate:"gte=0,lte=100"`
}

// Normalized returns a copy with defaults applied and the limit clamped.
func (f Filters) Normalized() Filters {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
