package progress

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mindcanvas/core"
)

func float(f float64) *float64 { return &f }

func entry(std string, score, maxScore float64) Entry {
	return Entry{Date: "2024-05-01", Standard: std, Score: float(score), MaxScore: float(maxScore), AssessmentType: "quiz"}
}

func TestTrackRequest_Validate(t *testing.T) {
	validate, translator := core.NewValidator()
	InitValidators(validate, translator)

	tests := []struct {
		name       string
		req        TrackRequest
		wantFields map[string]string
	}{
		{
			name: "empty request",
			req:  TrackRequest{},
			wantFields: map[string]string{
				"student_id": "this field is required",
				"entries":    "this field is required",
			},
		},
		{
			name: "invalid entries",
			req: TrackRequest{
				StudentID:    "s-1",
				RollupWindow: "decade",
				Entries: []Entry{
					{Date: "2024-05-01", Standard: "RL.5.2", Score: float(-1), MaxScore: float(0), AssessmentType: "essay"},
					{Date: "2024-05-01", Standard: "RL.5.2", Score: float(11), MaxScore: float(10)},
					{Standard: " "},
				},
			},
			wantFields: map[string]string{
				"rollup_window":              "",
				"entries[0].score":           "",
				"entries[0].max_score":       "",
				"entries[0].assessment_type": "",
				"entries[1].score":           "score cannot exceed max_score",
				"entries[2].date":            "this field is required",
				"entries[2].standard":        "this field is required",
				"entries[2].score":           "this field is required",
				"entries[2].max_score":       "this field is required",
			},
		},
		{
			name: "valid",
			req: TrackRequest{
				StudentID: "s-1",
				Entries:   []Entry{{Date: "2024-05-01", Standard: "RL.5.2", Score: float(0), MaxScore: float(10)}, entry("RL.5.2", 10, 10)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(validate)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "unit", tt.req.RollupWindow)
				assert.Equal(t, "other", tt.req.Entries[0].AssessmentType)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "want validator.ValidationErrors, got %v", err)
			got := core.TranslateValidationErrors(vErrs, translator)
			require.Len(t, got, len(tt.wantFields), "%v", got)
			for _, fe := range got {
				want, ok := tt.wantFields[fe.Field]
				require.True(t, ok, "unexpected field %q", fe.Field)
				if want != "" {
					assert.Equal(t, want, fe.Error)
				}
			}
		})
	}
}

func TestService_Track(t *testing.T) {
	svc := NewService()

	t.Run("single standard", func(t *testing.T) {
		resp, err := svc.Track(TrackRequest{
			StudentID: "s-1",
			Entries:   []Entry{entry("RL.5.2", 8, 10), entry("RL.5.2", 6, 10)},
		})
		require.NoError(t, err)
		assert.Equal(t, []Mastery{{Standard: "RL.5.2", AvgMastery: 0.7, Samples: 2}}, resp.Mastery)
	})

	t.Run("first seen order", func(t *testing.T) {
		resp, err := svc.Track(TrackRequest{
			StudentID: "s-1",
			Entries: []Entry{
				entry("RL.5.2", 1, 3),
				entry("NBT.5.1", 5, 5),
				entry("RL.5.2", 2, 3),
				entry("RI.5.1", 0, 4),
				entry("NBT.5.1", 1, 4),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []Mastery{
			{Standard: "RL.5.2", AvgMastery: 0.5, Samples: 2},
			{Standard: "NBT.5.1", AvgMastery: 0.625, Samples: 2},
			{Standard: "RI.5.1", AvgMastery: 0, Samples: 1},
		}, resp.Mastery)
	})

	t.Run("rounded to three decimals", func(t *testing.T) {
		resp, err := svc.Track(TrackRequest{StudentID: "s-1", Entries: []Entry{entry("RL.5.2", 2, 3)}})
		require.NoError(t, err)
		assert.Equal(t, 0.667, resp.Mastery[0].AvgMastery)
	})

	t.Run("no entries", func(t *testing.T) {
		resp, err := svc.Track(TrackRequest{StudentID: "s-1", Entries: []Entry{}})
		require.NoError(t, err)
		assert.NotNil(t, resp.Mastery)
		assert.Empty(t, resp.Mastery)
	})
}

func TestService_Track_MeanAndSamples(t *testing.T) {
	svc := NewService()
	stds := []string{"A", "B", "C"}

	entries := make([]Entry, 0, 30)
	for i := 0; i < 30; i++ {
		entries = append(entries, entry(stds[i%len(stds)], float64(i%7), float64(7+i%3)))
	}
	resp, err := svc.Track(TrackRequest{StudentID: "s-1", Entries: entries})
	require.NoError(t, err)
	require.Len(t, resp.Mastery, len(stds))

	for _, m := range resp.Mastery {
		var sum float64
		var n int
		for _, e := range entries {
			if e.Standard == m.Standard {
				sum += *e.Score / *e.MaxScore
				n++
			}
		}
		assert.Equal(t, n, m.Samples)
		assert.Equal(t, core.Round(sum/float64(n), 3), m.AvgMastery)
		assert.GreaterOrEqual(t, m.AvgMastery, 0.0)
		assert.LessOrEqual(t, m.AvgMastery, 1.0)
	}
}
