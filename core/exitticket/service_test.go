package exitticket

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mindcanvas/core"
)

func intPtr(i int) *int { return &i }

func TestAnalyzeRequest_Validate(t *testing.T) {
	validate, translator := core.NewValidator()

	t.Run("defaults", func(t *testing.T) {
		req := AnalyzeRequest{Prompt: "What do plants need?", Responses: []string{}}
		require.NoError(t, req.Validate(validate))
		assert.Equal(t, 3, *req.NumGroups)
		assert.Equal(t, 1, *req.ReturnExemplarsPerGroup)
	})

	t.Run("explicit zero exemplars", func(t *testing.T) {
		req := AnalyzeRequest{Prompt: "p", Responses: []string{"a"}, NumGroups: intPtr(8), ReturnExemplarsPerGroup: intPtr(0)}
		assert.NoError(t, req.Validate(validate))
	})

	tests := []struct {
		name       string
		req        AnalyzeRequest
		wantFields []string
	}{
		{name: "empty request", req: AnalyzeRequest{}, wantFields: []string{"prompt", "responses"}},
		{
			name:       "out of range",
			req:        AnalyzeRequest{Prompt: "p", Responses: []string{}, NumGroups: intPtr(1), ReturnExemplarsPerGroup: intPtr(6)},
			wantFields: []string{"num_groups", "return_exemplars_per_group"},
		},
		{
			name:       "too many groups",
			req:        AnalyzeRequest{Prompt: "p", Responses: []string{}, NumGroups: intPtr(9), ReturnExemplarsPerGroup: intPtr(-1)},
			wantFields: []string{"num_groups", "return_exemplars_per_group"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(validate)
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

func TestService_Analyze(t *testing.T) {
	svc := NewService(nil, nil)
	short := "Sunlight and water."
	long := strings.Repeat("x", 50)
	almost := strings.Repeat("é", 49) // 98 bytes, 49 runes

	t.Run("two buckets by length", func(t *testing.T) {
		resp, err := svc.Analyze(AnalyzeRequest{
			Prompt:                  "What do plants need?",
			Responses:               []string{long, short, almost},
			NumGroups:               intPtr(5),
			ReturnExemplarsPerGroup: intPtr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, []Group{
			{Group: 1, Label: "Concise", Responses: []string{short, almost}},
			{Group: 2, Label: "Detailed", Responses: []string{long}},
		}, resp.Groups)
		assert.Equal(t, []string{"Confuses chlorophyll with sugar synthesis"}, resp.Misconceptions)
	})

	t.Run("empty groups are empty lists", func(t *testing.T) {
		resp, err := svc.Analyze(AnalyzeRequest{Prompt: "p", Responses: []string{}})
		require.NoError(t, err)
		require.Len(t, resp.Groups, 2)
		for _, g := range resp.Groups {
			assert.NotNil(t, g.Responses)
			assert.Empty(t, g.Responses)
		}
	})
}
