package yearspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    int
		wantErr bool
	}{
		{name: "plain year", spec: "2019", want: 2019},
		{name: "surrounding whitespace", spec: " 2024 ", want: 2024},
		{name: "empty", spec: "", wantErr: true},
		{name: "not a number", spec: "twenty", wantErr: true},
		{name: "too short", spec: "99", wantErr: true},
		{name: "too long", spec: "20190", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Range
		wantErr bool
	}{
		{name: "empty means unrestricted", spec: "", want: Range{}},
		{name: "both bounds", spec: "2019-2024", want: Range{Since: 2019, Until: 2024}},
		{name: "lower bound only", spec: "2019-", want: Range{Since: 2019}},
		{name: "upper bound only", spec: "-2024", want: Range{Until: 2024}},
		{name: "single year", spec: "2019", want: Range{Since: 2019, Until: 2019}},
		{name: "whitespace trimmed", spec: " 2019-2024 ", want: Range{Since: 2019, Until: 2024}},
		{name: "start after end", spec: "2024-2019", wantErr: true},
		{name: "bare dash", spec: "-", wantErr: true},
		{name: "garbage lower bound", spec: "abc-2024", wantErr: true},
		{name: "garbage upper bound", spec: "2019-later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Since: 2019, Until: 2024}
	assert.True(t, r.Contains(2019))
	assert.True(t, r.Contains(2024))
	assert.False(t, r.Contains(2018))
	assert.False(t, r.Contains(2025))

	open := Range{Since: 2019}
	assert.True(t, open.Contains(2100))
	assert.False(t, open.Contains(1990))

	assert.True(t, Range{}.Contains(1959))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "all years", Range{}.String())
	assert.Equal(t, "2019-2024", Range{Since: 2019, Until: 2024}.String())
	assert.Equal(t, "2019-", Range{Since: 2019}.String())
	assert.Equal(t, "-2024", Range{Until: 2024}.String())
	assert.Equal(t, "2019", Range{Since: 2019, Until: 2019}.String())
}
