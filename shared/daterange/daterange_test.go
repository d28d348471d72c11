package daterange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/shared/daterange"
	"stay/shared/failure"
)

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()

	r, err := daterange.Parse(start, end)
	require.NoError(t, err)

	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid range", start: "2025-01-10", end: "2025-01-15", wantErr: false},
		{name: "single night", start: "2025-01-10", end: "2025-01-11", wantErr: false},
		{name: "zero length", start: "2025-01-10", end: "2025-01-10", wantErr: true},
		{name: "inverted", start: "2025-01-15", end: "2025-01-10", wantErr: true},
		{name: "garbage start", start: "not-a-date", end: "2025-01-10", wantErr: true},
		{name: "garbage end", start: "2025-01-10", end: "10/01/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := daterange.Parse(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidRange))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    daterange.Range
		b    daterange.Range
		want bool
	}{
		{
			name: "identical ranges",
			a:    mustRange(t, "2025-02-05", "2025-02-10"),
			b:    mustRange(t, "2025-02-05", "2025-02-10"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustRange(t, "2025-02-05", "2025-02-10"),
			b:    mustRange(t, "2025-02-08", "2025-02-12"),
			want: true,
		},
		{
			name: "contained range",
			a:    mustRange(t, "2025-02-01", "2025-02-28"),
			b:    mustRange(t, "2025-02-10", "2025-02-12"),
			want: true,
		},
		{
			name: "back-to-back stays do not overlap",
			a:    mustRange(t, "2025-01-10", "2025-01-15"),
			b:    mustRange(t, "2025-01-15", "2025-01-20"),
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    mustRange(t, "2025-01-01", "2025-01-05"),
			b:    mustRange(t, "2025-03-01", "2025-03-05"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))

			// The predicate must be symmetric.
			assert.Equal(t, tt.a.Overlaps(tt.b), tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsAny(t *testing.T) {
	reserved := []daterange.Range{
		mustRange(t, "2025-01-10", "2025-01-15"),
		mustRange(t, "2025-02-01", "2025-02-03"),
	}

	assert.True(t, mustRange(t, "2025-01-14", "2025-01-16").OverlapsAny(reserved))
	assert.False(t, mustRange(t, "2025-01-15", "2025-02-01").OverlapsAny(reserved))
	assert.False(t, mustRange(t, "2025-03-01", "2025-03-05").OverlapsAny(nil))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 5, mustRange(t, "2025-01-10", "2025-01-15").Nights())
	assert.Equal(t, 1, mustRange(t, "2025-01-10", "2025-01-11").Nights())
	assert.Equal(t, 31, mustRange(t, "2025-01-01", "2025-02-01").Nights())
}
