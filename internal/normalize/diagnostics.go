package normalize

// Diagnostics records the defaulting a normalization pass applied.
// Filling a missing field with its zero value is deliberate graceful
// degradation, not a swallowed failure, so tests and callers can see
// exactly which fields degraded without the pass ever aborting.
type Diagnostics struct {
	DefaultedFields map[string]int
	UnknownStatKeys int
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{DefaultedFields: make(map[string]int)}
}

// RecordDefault notes that a missing field was filled with its default.
func (d *Diagnostics) RecordDefault(field string) {
	if d == nil {
		return
	}
	d.DefaultedFields[field]++
}

// RecordUnknownStatKey notes a breakdown key the classifier does not
// recognize. The key stays in raw storage; only categorized views drop it.
func (d *Diagnostics) RecordUnknownStatKey() {
	if d == nil {
		return
	}
	d.UnknownStatKeys++
}

// Defaulted returns how many times a given field was defaulted.
func (d *Diagnostics) Defaulted(field string) int {
	if d == nil {
		return 0
	}
	return d.DefaultedFields[field]
}
