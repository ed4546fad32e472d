package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.True(t, order == binary.LittleEndian || order == binary.BigEndian)
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
}

func TestGetNativeEngine(t *testing.T) {
	native := GetNativeEngine()
	require.Equal(t, IsNativeBigEndian(), IsBigEndian(native))
}

func TestEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		big    bool
		want   []byte
	}{
		{"little-endian", GetLittleEndianEngine(), false, []byte{0x54, 0x4A, 0x78, 0x56, 0x34, 0x12}},
		{"big-endian", GetBigEndianEngine(), true, []byte{0x4A, 0x54, 0x12, 0x34, 0x56, 0x78}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.big, IsBigEndian(tt.engine))
			require.Equal(t, tt.name, Name(tt.engine))

			buf := tt.engine.AppendUint16(nil, 0x4A54)
			buf = tt.engine.AppendUint32(buf, 0x12345678)
			require.Equal(t, tt.want, buf)

			require.Equal(t, uint16(0x4A54), tt.engine.Uint16(buf))
			require.Equal(t, uint32(0x12345678), tt.engine.Uint32(buf[2:]))
		})
	}
}

func TestFromBigEndianFlag(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), FromBigEndianFlag(true))
	require.Equal(t, GetLittleEndianEngine(), FromBigEndianFlag(false))
}
