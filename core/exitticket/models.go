package exitticket

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

const (
	defaultNumGroups = 3
	defaultExemplars = 1
)

// AnalyzeRequest contains the ungraded responses to an exit ticket prompt.
// Responses are kept verbatim.
type AnalyzeRequest struct {
	Prompt                  string   `json:"prompt" validate:"required,notblank"`
	Responses               []string `json:"responses" validate:"required"`
	NumGroups               *int     `json:"num_groups" validate:"required,min=2,max=8"`
	ReturnExemplarsPerGroup *int     `json:"return_exemplars_per_group" validate:"required,min=0,max=5"`
}

func (ar *AnalyzeRequest) Validate(validate *validator.Validate) error {
	ar.Prompt = core.CleanString(ar.Prompt)
	if ar.NumGroups == nil {
		n := defaultNumGroups
		ar.NumGroups = &n
	}
	if ar.ReturnExemplarsPerGroup == nil {
		n := defaultExemplars
		ar.ReturnExemplarsPerGroup = &n
	}
	return validate.Struct(ar)
}

type (
	AnalyzeResponse struct {
		Groups         []Group  `json:"groups"`
		Misconceptions []string `json:"misconceptions"`
	}

	Group struct {
		Group     int      `json:"group"`
		Label     string   `json:"label"`
		Responses []string `json:"responses"`
	}
)
