// Package collision tracks series identifiers by hash and detects hash
// collisions and duplicate identifiers.
package collision

// Tracker maps identifier hashes to the position of the first series that
// carries the identifier.
type Tracker struct {
	first        map[uint64]int    // hash -> first position
	names        map[uint64]string // hash -> identifier of the first position
	duplicates   []string          // identifiers seen more than once, in first-repeat order
	hasCollision bool
}

// NewTracker creates a new collision tracker sized for n identifiers.
func NewTracker(n int) *Tracker {
	return &Tracker{
		first: make(map[uint64]int, n),
		names: make(map[uint64]string, n),
	}
}

// Track records identifier id with hash h at position pos.
//
// The first position for a hash wins. A different identifier with the same
// hash sets the collision flag; the same identifier again is recorded as a
// duplicate.
//
// Returns:
//   - bool: true if the identifier was already tracked under h
func (t *Tracker) Track(id string, h uint64, pos int) bool {
	existing, exists := t.names[h]
	if !exists {
		t.first[h] = pos
		t.names[h] = id

		return false
	}

	if existing != id {
		t.hasCollision = true
		return false
	}

	for _, d := range t.duplicates {
		if d == id {
			return true
		}
	}
	t.duplicates = append(t.duplicates, id)

	return true
}

// Lookup returns the first position tracked under hash h. The caller must
// verify the identifier at that position, since distinct identifiers can
// share a hash.
func (t *Tracker) Lookup(h uint64) (int, bool) {
	pos, ok := t.first[h]
	return pos, ok
}

// HasCollision returns true if two distinct identifiers share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Duplicates returns the identifiers tracked more than once.
func (t *Tracker) Duplicates() []string {
	return t.duplicates
}
