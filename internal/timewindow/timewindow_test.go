package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantError bool
	}{
		{name: "valid_window", start: t0, end: t0.Add(time.Hour), wantError: false},
		{name: "inverted_window", start: t0.Add(time.Hour), end: t0, wantError: true},
		{name: "empty_window", start: t0, end: t0, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w, err := New(tc.start, tc.end)
			if tc.wantError {
				require.ErrorIs(t, err, ErrInvalidWindow)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.start, w.Start)
				require.Equal(t, tc.end, w.End)
			}
		})
	}
}

func TestWindowPredicates(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := Window{Start: t0, End: t0.Add(time.Hour)}

	tests := []struct {
		name           string
		instant        time.Time
		wantContains   bool
		wantStartsAft  bool
		wantEndsBefore bool
	}{
		{name: "before_start", instant: t0.Add(-time.Minute), wantContains: false, wantStartsAft: true, wantEndsBefore: false},
		{name: "at_start", instant: t0, wantContains: true, wantStartsAft: false, wantEndsBefore: false},
		{name: "inside", instant: t0.Add(30 * time.Minute), wantContains: true, wantStartsAft: false, wantEndsBefore: false},
		{name: "at_end", instant: t0.Add(time.Hour), wantContains: true, wantStartsAft: false, wantEndsBefore: false},
		{name: "after_end", instant: t0.Add(time.Hour + time.Second), wantContains: false, wantStartsAft: false, wantEndsBefore: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.wantContains, w.Contains(tc.instant))
			require.Equal(t, tc.wantStartsAft, w.StartsAfter(tc.instant))
			require.Equal(t, tc.wantEndsBefore, w.EndsBefore(tc.instant))
		})
	}
}
