package document

import (
	"fmt"
	"slices"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/internal/collision"
	"github.com/arloliu/jts/internal/hash"
	"github.com/arloliu/jts/internal/options"
	"github.com/arloliu/jts/series"
)

// DefaultVersion is the format version assigned to new documents.
const DefaultVersion = "1.0"

// Document is an ordered collection of series plus a format version.
//
// The position of a series in the document is its column index in the
// encoded form. It is unrelated to the series identifier.
type Document struct {
	version string
	series  []*series.Series

	// byID maps the xxHash64 of an identifier to the first series carrying
	// it. Built lazily by GetSeries, dropped on every mutation.
	byID *collision.Tracker
}

// Option configures a Document at construction.
type Option = options.Option[*Document]

// WithVersion sets the format version.
func WithVersion(version string) Option {
	return options.NoError(func(d *Document) {
		d.version = version
	})
}

// WithSeries attaches series in order.
func WithSeries(s ...*series.Series) Option {
	return options.New(func(d *Document) error {
		return d.AddSeries(s...)
	})
}

// WithSeriesAny attaches series from a dynamically typed argument.
// See AddSeriesAny for the accepted types.
func WithSeriesAny(v any) Option {
	return options.New(func(d *Document) error {
		return d.AddSeriesAny(v)
	})
}

// New creates a Document with DefaultVersion and no series.
//
// Returns:
//   - *Document: The created document
//   - error: ErrInvalidType if a series option carries an invalid argument
func New(opts ...Option) (*Document, error) {
	d := &Document{version: DefaultVersion}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Version returns the format version.
func (d *Document) Version() string {
	return d.version
}

// Len returns the number of series.
func (d *Document) Len() int {
	return len(d.series)
}

// At returns the series at column index i. It panics if i is out of range.
func (d *Document) At(i int) *series.Series {
	return d.series[i]
}

// Series returns the attached series in column order. The slice is a copy;
// the series are shared.
func (d *Document) Series() []*series.Series {
	return slices.Clone(d.series)
}

// AddSeries appends series in order. A nil series returns ErrInvalidType and
// nothing is appended.
func (d *Document) AddSeries(s ...*series.Series) error {
	for i, elem := range s {
		if elem == nil {
			return fmt.Errorf("%w: nil series at index %d", errs.ErrInvalidType, i)
		}
	}

	d.series = append(d.series, s...)
	d.byID = nil

	return nil
}

// AddSeriesAny appends series from a dynamically typed argument.
//
// Accepted types are *series.Series, []*series.Series and []any whose
// elements are all *series.Series. Anything else, or a nil element, returns
// ErrInvalidType and nothing is appended.
func (d *Document) AddSeriesAny(v any) error {
	switch val := v.(type) {
	case *series.Series:
		return d.AddSeries(val)
	case []*series.Series:
		return d.AddSeries(val...)
	case []any:
		batch := make([]*series.Series, 0, len(val))
		for i, elem := range val {
			s, ok := elem.(*series.Series)
			if !ok {
				return fmt.Errorf("%w: element %d is %T, want *series.Series", errs.ErrInvalidType, i, elem)
			}
			batch = append(batch, s)
		}

		return d.AddSeries(batch...)
	default:
		return fmt.Errorf("%w: series must be *series.Series or a slice of it, got %T", errs.ErrInvalidType, v)
	}
}

// GetSeries returns the first series whose identifier equals id.
// A missing identifier is not an error; ok is false.
func (d *Document) GetSeries(id string) (s *series.Series, ok bool) {
	if d.byID == nil {
		d.buildIndex()
	}

	i, hit := d.byID.Lookup(hash.ID(id))
	if !hit {
		return nil, false
	}
	if d.series[i].Identifier() == id {
		return d.series[i], true
	}
	if !d.byID.HasCollision() {
		return nil, false
	}

	// hash collision between distinct identifiers
	for _, s := range d.series {
		if s.Identifier() == id {
			return s, true
		}
	}

	return nil, false
}

// DuplicateIdentifiers returns the identifiers carried by more than one
// series. GetSeries only ever returns the first of them.
func (d *Document) DuplicateIdentifiers() []string {
	if d.byID == nil {
		d.buildIndex()
	}

	return slices.Clone(d.byID.Duplicates())
}

func (d *Document) buildIndex() {
	d.byID = collision.NewTracker(len(d.series))
	for i, s := range d.series {
		d.byID.Track(s.Identifier(), hash.ID(s.Identifier()), i)
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	out := &Document{
		version: d.version,
		series:  make([]*series.Series, len(d.series)),
	}
	for i, s := range d.series {
		out.series[i] = s.Clone()
	}

	return out
}
