package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunev/musicbox/internal/common"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantKind  PlanKind
		wantValue string
	}{
		{
			name:      "artist alone uses artist index",
			filter:    Filter{Artist: "Queen"},
			wantKind:  PlanArtistIndex,
			wantValue: "Queen",
		},
		{
			name:      "album alone uses album index",
			filter:    Filter{Album: "A Night at the Opera"},
			wantKind:  PlanAlbumIndex,
			wantValue: "A Night at the Opera",
		},
		{
			name:      "year alone uses year index",
			filter:    Filter{Year: "1975"},
			wantKind:  PlanYearIndex,
			wantValue: "1975",
		},
		{
			name:      "title alone uses title index",
			filter:    Filter{Title: "Bohemian Rhapsody"},
			wantKind:  PlanTitleIndex,
			wantValue: "Bohemian Rhapsody",
		},
		{
			name:      "surrounding whitespace is trimmed before planning",
			filter:    Filter{Artist: "  Queen  "},
			wantKind:  PlanArtistIndex,
			wantValue: "Queen",
		},
		{
			name:     "two attributes fall back to scan",
			filter:   Filter{Artist: "Queen", Year: "1975"},
			wantKind: PlanScan,
		},
		{
			name:     "all attributes fall back to scan",
			filter:   Filter{Title: "a", Year: "b", Artist: "c", Album: "d"},
			wantKind: PlanScan,
		},
		{
			name:     "whitespace-only attribute does not count",
			filter:   Filter{Artist: "Queen", Year: "   "},
			wantKind: PlanArtistIndex,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := PlanFor(tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, plan.Kind)
			if tc.wantValue != "" {
				assert.Equal(t, tc.wantValue, plan.Value)
			}
		})
	}
}

func TestPlanFor_EmptyFilter(t *testing.T) {
	for _, f := range []Filter{{}, {Title: "  ", Artist: "\t"}} {
		_, err := PlanFor(f)
		assert.ErrorIs(t, err, common.ErrNoFilter)
	}
}

func TestPlanKind_String(t *testing.T) {
	assert.Equal(t, "artist-index", PlanArtistIndex.String())
	assert.Equal(t, "scan", PlanScan.String())
	assert.Equal(t, "invalid", PlanInvalid.String())
}
