package payload

import (
	"fmt"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
	"github.com/arloliu/jts/internal/options"
)

// DefaultCompression is the compression used when none is configured.
const DefaultCompression = format.CompressionZstd

type config struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures Pack.
type Option = options.Option[*config]

// WithCompression selects the body compression.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: 0x%x", errs.ErrInvalidCompression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian stores size and checksum big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithLittleEndian stores size and checksum little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = false
	})
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{compression: DefaultCompression}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
