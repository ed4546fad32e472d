package section

// Header summarises the data array and describes the columns.
type Header struct {
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	RecordCount int     `json:"recordCount"`
	Columns     Columns `json:"columns"`
}

// NewHeader derives the header from sorted, non-empty data.
func NewHeader(data []Entry, columns Columns) *Header {
	return &Header{
		StartTime:   data[0].TS,
		EndTime:     data[len(data)-1].TS,
		RecordCount: len(data),
		Columns:     columns,
	}
}
