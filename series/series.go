package series

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
	"github.com/arloliu/jts/internal/options"
)

// Series is a named, typed, ordered collection of Records.
//
// Note: Series is NOT thread-safe. Do not insert records while an encode of
// the owning document is in progress.
type Series struct {
	identifier string
	name       string
	units      *string
	dataType   format.DataType
	records    []Record

	identifierSet bool
}

// Option configures a Series at construction.
type Option = options.Option[*Series]

// WithIdentifier sets the series identifier. Without it, New generates a
// fresh UUID for every series.
func WithIdentifier(id string) Option {
	return options.NoError(func(s *Series) {
		s.identifier = id
		s.identifierSet = true
	})
}

// WithUnits sets the measurement units.
func WithUnits(units string) Option {
	return options.NoError(func(s *Series) {
		s.units = &units
	})
}

// WithDataType sets the series data type. The default is format.TypeNumber.
func WithDataType(dt format.DataType) Option {
	return options.New(func(s *Series) error {
		if !dt.IsValid() {
			return fmt.Errorf("%w: 0x%x", errs.ErrInvalidDataType, uint8(dt))
		}
		s.dataType = dt

		return nil
	})
}

// WithRecords sets the initial records, in order.
func WithRecords(records ...Record) Option {
	return options.NoError(func(s *Series) {
		s.records = append(s.records, records...)
	})
}

// WithRecordsAny sets the initial records from a dynamically typed argument.
// See Append for the accepted types.
func WithRecordsAny(v any) Option {
	return options.New(func(s *Series) error {
		return s.Append(v)
	})
}

// New creates a Series with the given name.
//
// Parameters:
//   - name: Human readable series name
//   - opts: Optional identifier, units, data type and initial records
//
// Returns:
//   - *Series: The created series
//   - error: ErrInvalidDataType or ErrInvalidType from the options
func New(name string, opts ...Option) (*Series, error) {
	s := &Series{
		name:     name,
		dataType: format.TypeNumber,
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if !s.identifierSet {
		s.identifier = uuid.NewString()
	}

	return s, nil
}

// Identifier returns the series identifier.
func (s *Series) Identifier() string {
	return s.identifier
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// Units returns the measurement units and whether they are set.
func (s *Series) Units() (string, bool) {
	if s.units == nil {
		return "", false
	}

	return *s.units, true
}

// DataType returns the declared data type.
func (s *Series) DataType() format.DataType {
	return s.dataType
}

// Len returns the number of records.
func (s *Series) Len() int {
	return len(s.records)
}

// At returns the record at index i. It panics if i is out of range.
func (s *Series) At(i int) Record {
	return s.records[i]
}

// Records returns a copy of the record slice in insertion order.
func (s *Series) Records() []Record {
	return slices.Clone(s.records)
}

// All returns an iterator over the records in insertion order.
func (s *Series) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range s.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Insert appends a single record.
func (s *Series) Insert(r Record) {
	s.records = append(s.records, r)
}

// InsertMany appends records in order.
func (s *Series) InsertMany(records []Record) {
	s.records = append(s.records, records...)
}

// Append appends records from a dynamically typed argument.
//
// Accepted types are Record, *Record, []Record, []*Record and []any whose
// elements are Record or *Record. Any other type, or a nil element, returns
// ErrInvalidType and leaves the series unchanged.
func (s *Series) Append(v any) error {
	switch val := v.(type) {
	case Record:
		s.Insert(val)
	case *Record:
		if val == nil {
			return fmt.Errorf("%w: nil record", errs.ErrInvalidType)
		}
		s.Insert(*val)
	case []Record:
		s.InsertMany(val)
	case []*Record:
		batch := make([]Record, 0, len(val))
		for i, r := range val {
			if r == nil {
				return fmt.Errorf("%w: nil record at index %d", errs.ErrInvalidType, i)
			}
			batch = append(batch, *r)
		}
		s.InsertMany(batch)
	case []any:
		batch := make([]Record, 0, len(val))
		for i, elem := range val {
			switch r := elem.(type) {
			case Record:
				batch = append(batch, r)
			case *Record:
				if r == nil {
					return fmt.Errorf("%w: nil record at index %d", errs.ErrInvalidType, i)
				}
				batch = append(batch, *r)
			default:
				return fmt.Errorf("%w: element %d is %T, want Record", errs.ErrInvalidType, i, elem)
			}
		}
		s.InsertMany(batch)
	default:
		return fmt.Errorf("%w: records must be Record or a slice of Record, got %T", errs.ErrInvalidType, v)
	}

	return nil
}

// Sort orders the records by timestamp. Records with equal timestamps keep
// their relative order.
func (s *Series) Sort() {
	slices.SortStableFunc(s.records, func(a, b Record) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}

// Clone returns a deep copy of s, including its identifier.
func (s *Series) Clone() *Series {
	out := &Series{
		identifier:    s.identifier,
		name:          s.name,
		dataType:      s.dataType,
		identifierSet: true,
		records:       make([]Record, len(s.records)),
	}
	if s.units != nil {
		u := *s.units
		out.units = &u
	}
	for i, r := range s.records {
		out.records[i] = r.Clone()
	}

	return out
}
