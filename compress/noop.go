package compress

// NoOpCompressor passes data through without compression. Payloads packed
// with it keep their JSON readable with standard tools.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSize returns data itself after checking its length.
func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkSize(data, size); err != nil {
		return nil, err
	}

	return data, nil
}
