package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Decode(t *testing.T) {
	b := NewBase64()
	raw := []byte{0xfb, 0xff, 0xfe, 0x01, 0x02}

	tests := []struct {
		name  string
		input string
	}{
		{"standard padded", "+//+AQI="},
		{"standard raw", "+//+AQI"},
		{"url safe padded", "-__-AQI="},
		{"url safe raw", "-__-AQI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}

	assert.Equal(t, "+//+AQI=", b.Encode(raw))

	_, err := b.Decode("not base64!")
	assert.Error(t, err)
}

func TestJCSTransform(t *testing.T) {
	out, err := NewJCS().Transform([]byte(`{"b": 2, "a": [1, 2], "c": "x"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":2,"c":"x"}`, string(out))
}
