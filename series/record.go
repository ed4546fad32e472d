package series

import (
	"time"

	"github.com/arloliu/jts/internal/options"
)

// Record is one timestamped observation. Quality and Annotation are optional;
// nil means absent.
type Record struct {
	Timestamp  time.Time
	Value      Value
	Quality    *int
	Annotation *string
}

// RecordOption configures optional Record attributes.
type RecordOption = options.Option[*Record]

// WithQuality sets the record quality code.
func WithQuality(q int) RecordOption {
	return options.NoError(func(r *Record) {
		r.Quality = &q
	})
}

// WithAnnotation sets the record annotation.
func WithAnnotation(a string) RecordOption {
	return options.NoError(func(r *Record) {
		r.Annotation = &a
	})
}

// NewRecord creates a Record with the given timestamp and value.
func NewRecord(ts time.Time, v Value, opts ...RecordOption) Record {
	r := Record{Timestamp: ts, Value: v}
	// record options never fail
	_ = options.Apply(&r, opts...)

	return r
}

// IsEmpty reports whether value, quality and annotation are all absent.
// Empty records contribute nothing to an encoded document.
func (r Record) IsEmpty() bool {
	return r.Value.IsNull() && r.Quality == nil && r.Annotation == nil
}

// QualityValue returns the quality code and whether it is set.
func (r Record) QualityValue() (int, bool) {
	if r.Quality == nil {
		return 0, false
	}

	return *r.Quality, true
}

// AnnotationValue returns the annotation and whether it is set.
func (r Record) AnnotationValue() (string, bool) {
	if r.Annotation == nil {
		return "", false
	}

	return *r.Annotation, true
}

// Clone returns a copy of r that shares no pointers with it.
func (r Record) Clone() Record {
	out := r
	if r.Quality != nil {
		q := *r.Quality
		out.Quality = &q
	}
	if r.Annotation != nil {
		a := *r.Annotation
		out.Annotation = &a
	}

	return out
}
