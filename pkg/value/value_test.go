package value

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   float64
		wantOK bool
	}{
		{"plain text", "0.15", 0.15, true},
		{"quoted text", `"2.50"`, 2.5, true},
		{"bytes", []byte("1.00"), 1, true},
		{"integer text", "42", 42, true},
		{"negative", "-3.5", -3.5, true},
		{"padded", " 0.75 ", 0.75, true},
		{"native float", float64(255.745), 255.745, true},
		{"native float32", float32(0.5), 0.5, true},
		{"native int", 7, 7, true},
		{"native uint32", uint32(9), 9, true},
		{"nil", nil, 0, false},
		{"empty", "", 0, false},
		{"garbage", "abc", 0, false},
		{"only quotes", `""`, 0, false},
		{"nan", "NaN", 0, false},
		{"double quoted keeps inner quotes", `""1.0""`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   int64
		wantOK bool
	}{
		{"plain text", "2000000", 2000000, true},
		{"quoted text", `"75"`, 75, true},
		{"negative text", "-1", -1, true},
		{"native int", 500000, 500000, true},
		{"native uint", uint(12), 12, true},
		{"counter64", uint64(1 << 40), 1 << 40, true},
		{"counter64 overflow", uint64(1 << 63), 0, false},
		{"big int", big.NewInt(99), 99, true},
		{"nil big int", (*big.Int)(nil), 0, false},
		{"fractional text", "1.5", 0, false},
		{"native float", 1.0, 0, false},
		{"nil", nil, 0, false},
		{"garbage", "12ab", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	s, ok := String([]byte("router1"))
	assert.True(t, ok)
	assert.Equal(t, "router1", s)

	s, ok = String(uint32(5))
	assert.True(t, ok)
	assert.Equal(t, "5", s)

	_, ok = String(nil)
	assert.False(t, ok)
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "/", Unquote(`"/"`))
	assert.Equal(t, "/", Unquote("/"))
	assert.Equal(t, `"`, Unquote(`"`))
	assert.Equal(t, "", Unquote(`""`))
}

func TestKibToMib(t *testing.T) {
	assert.Equal(t, 0.0, KibToMib(nil))
	assert.Equal(t, 0.0, KibToMib("not a number"))
	assert.Equal(t, 1.0, KibToMib(1024))
	assert.Equal(t, 1.0, KibToMib(int64(1024)))
	assert.Equal(t, 0.5, KibToMib("512"))
	assert.InDelta(t, 1953.125, KibToMib(2000000), 1e-9)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name  string
		ticks any
		want  string
	}{
		{"absent", nil, "n/a"},
		{"garbage", "soon", "n/a"},
		{"zero", uint32(0), "0:00:00"},
		{"sub-second", uint32(99), "0:00:00"},
		{"one hour", uint32(360000), "1:00:00"},
		{"mixed", uint32(12345678), "1 day, 10:17:36"},
		{"several days", int64(3*86400*100 + 61*100), "3 days, 0:01:01"},
		{"text ticks", "360000", "1:00:00"},
		{"negative", -100, "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.ticks))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00:59", FormatDuration(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "23:59:59", FormatDuration(24*time.Hour-time.Second))
	assert.Equal(t, "1 day, 0:00:00", FormatDuration(24*time.Hour))
}
