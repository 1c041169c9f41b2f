package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntQuestion_Parse(t *testing.T) {
	q := IntQuestion{Title: "Year", Min: 1900, Max: 2100, Default: 2016, HasDefault: true}

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 2016, false},
		{"  ", 2016, false},
		{"1900", 1900, false},
		{"2100", 2100, false},
		{" 2020 ", 2020, false},
		{"1899", 0, true},
		{"2101", 0, true},
		{"20x0", 0, true},
		{"2019.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := q.Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidValue))
				assert.Contains(t, err.Error(), "between 1900 and 2100")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntQuestion_NoDefault(t *testing.T) {
	q := IntQuestion{Title: "Month", Min: 1, Max: 12}
	_, err := q.Parse("")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, "[1-12]", q.Hint())
}

func TestFloatQuestion_Parse(t *testing.T) {
	q := FloatQuestion{Title: "Alpha", Min: 0.50, Max: 0.999, Default: 0.95, HasDefault: true}

	v, err := q.Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0.95, v)

	v, err = q.Parse("0,8")
	require.NoError(t, err)
	assert.Equal(t, 0.8, v)

	v, err = q.Parse("0.999")
	require.NoError(t, err)
	assert.Equal(t, 0.999, v)

	for _, raw := range []string{"0.49", "1", "abc", "0.9999", "NaN", "nan", "+Inf"} {
		_, err := q.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidValue, raw)
	}

	assert.Equal(t, "[0.5-0.999] (0.95)", q.Hint())
}

func TestParseConfirm(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"y", false, true},
		{"YES", false, true},
		{"sim", false, true},
		{"n", true, false},
		{"No", true, false},
	}
	for _, tt := range tests {
		got, err := ParseConfirm(tt.raw, tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q", tt.raw)
	}

	_, err := ParseConfirm("maybe", true)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
