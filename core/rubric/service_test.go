package rubric

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mindcanvas/core"
)

func float(f float64) *float64 { return &f }

func TestGradeRequest_Validate(t *testing.T) {
	validate, translator := core.NewValidator()

	tests := []struct {
		name       string
		req        GradeRequest
		wantFields []string
	}{
		{
			name:       "empty request",
			req:        GradeRequest{},
			wantFields: []string{"rubric", "student_response"},
		},
		{
			name:       "empty rubric",
			req:        GradeRequest{Rubric: []Criterion{}, StudentResponse: "..."},
			wantFields: []string{"rubric"},
		},
		{
			name: "invalid criteria",
			req: GradeRequest{
				Rubric: []Criterion{
					{Criterion: "Clarity", Levels: []Level{}},
					{Criterion: " ", Levels: []Level{{Label: "Low", Points: float(-1)}, {Label: "High"}}, Weight: float(-2)},
				},
				StudentResponse: "...",
				MaxTotalPoints:  float(-5),
			},
			wantFields: []string{
				"rubric[0].levels",
				"rubric[1].criterion",
				"rubric[1].levels[0].points",
				"rubric[1].levels[1].points",
				"rubric[1].weight",
				"max_total_points",
			},
		},
		{
			name: "valid with zero values",
			req: GradeRequest{
				Rubric:          []Criterion{{Criterion: "Clarity", Levels: []Level{{Label: "None", Points: float(0)}}, Weight: float(0)}},
				StudentResponse: "...",
				MaxTotalPoints:  float(0),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(validate)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "want validator.ValidationErrors, got %v", err)
			got := make([]string, 0, len(vErrs))
			for _, fe := range core.TranslateValidationErrors(vErrs, translator) {
				got = append(got, fe.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestService_Grade(t *testing.T) {
	svc := NewService(nil, nil)

	t.Run("weighted top level", func(t *testing.T) {
		resp, err := svc.Grade(GradeRequest{
			Rubric: []Criterion{{
				Criterion: "Clarity",
				Levels:    []Level{{Label: "Low", Points: float(1)}, {Label: "High", Points: float(4)}},
				Weight:    float(2),
			}},
			StudentResponse: "...",
		})
		require.NoError(t, err)
		assert.Equal(t, 8.0, resp.TotalPoints)
		assert.Equal(t, []CriterionResult{{Criterion: "Clarity", SelectedLevel: "High", PointsAwarded: 8}}, resp.Criteria)
		assert.Equal(t, "Good structure; consider adding more specific evidence.", resp.Feedback)
	})

	t.Run("first level wins ties", func(t *testing.T) {
		resp, err := svc.Grade(GradeRequest{
			Rubric: []Criterion{{
				Criterion: "Evidence",
				Levels: []Level{
					{Label: "Basic", Points: float(1)},
					{Label: "Proficient", Points: float(3)},
					{Label: "Advanced", Points: float(3)},
				},
			}},
			StudentResponse: "...",
		})
		require.NoError(t, err)
		assert.Equal(t, "Proficient", resp.Criteria[0].SelectedLevel)
		assert.Equal(t, 3.0, resp.TotalPoints)
	})

	t.Run("weights sum and cap", func(t *testing.T) {
		rubric := []Criterion{
			{Criterion: "Clarity", Levels: []Level{{Label: "High", Points: float(4)}}},
			{Criterion: "Evidence", Levels: []Level{{Label: "High", Points: float(5)}}, Weight: float(0.5)},
			{Criterion: "Style", Levels: []Level{{Label: "High", Points: float(10)}}, Weight: float(0)},
		}

		resp, err := svc.Grade(GradeRequest{Rubric: rubric, StudentResponse: "..."})
		require.NoError(t, err)
		assert.Equal(t, 6.5, resp.TotalPoints)
		assert.Equal(t, 0.0, resp.Criteria[2].PointsAwarded)

		resp, err = svc.Grade(GradeRequest{Rubric: rubric, StudentResponse: "...", MaxTotalPoints: float(5)})
		require.NoError(t, err)
		assert.Equal(t, 5.0, resp.TotalPoints)
		assert.Equal(t, 4.0, resp.Criteria[0].PointsAwarded)

		resp, err = svc.Grade(GradeRequest{Rubric: rubric, StudentResponse: "...", MaxTotalPoints: float(0)})
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.TotalPoints)

		resp, err = svc.Grade(GradeRequest{Rubric: rubric, StudentResponse: "...", MaxTotalPoints: float(100)})
		require.NoError(t, err)
		assert.Equal(t, 6.5, resp.TotalPoints)
	})

	t.Run("empty levels", func(t *testing.T) {
		_, err := svc.Grade(GradeRequest{Rubric: []Criterion{{Criterion: "Clarity"}}, StudentResponse: "..."})
		assert.Error(t, err)
	})
}

func TestService_Grade_TotalBounds(t *testing.T) {
	svc := NewService(nil, nil)
	caps := []*float64{nil, float(0), float(3), float(12.5), float(1000)}

	for n := 1; n <= 5; n++ {
		rubric := make([]Criterion, 0, n)
		for i := 0; i < n; i++ {
			rubric = append(rubric, Criterion{
				Criterion: "c",
				Levels:    []Level{{Label: "a", Points: float(float64(i))}, {Label: "b", Points: float(float64(n))}},
				Weight:    float(float64(i) / 2),
			})
		}
		for _, maxPts := range caps {
			resp, err := svc.Grade(GradeRequest{Rubric: rubric, StudentResponse: "...", MaxTotalPoints: maxPts})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, resp.TotalPoints, 0.0)
			if maxPts != nil {
				assert.LessOrEqual(t, resp.TotalPoints, *maxPts)
			}
			assert.Len(t, resp.Criteria, n)
		}
	}
}
