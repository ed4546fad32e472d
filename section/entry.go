package section

// Entry is one row of the data array: every field recorded within one epoch second.
type Entry struct {
	// TS is the full-precision timestamp of the record that created the entry.
	TS string `json:"ts"`
	// F holds one field per contributing series.
	F Fields `json:"f"`

	// Key is the epoch-second grouping key. It orders entries and is not serialized.
	Key int64 `json:"-"`
}
