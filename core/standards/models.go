package standards

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

const defaultFramework = "CCSS"

// MapRequest lists the objectives to classify against standards frameworks.
type MapRequest struct {
	Frameworks []string `json:"frameworks" validate:"omitempty,dive,oneof=CCSS NGSS TEKS CA-ELA CA-Math Other"`
	Objectives []string `json:"objectives" validate:"required,dive,notblank"`
}

func (mr *MapRequest) Validate(validate *validator.Validate) error {
	core.CleanStrings(mr.Frameworks)
	core.CleanStrings(mr.Objectives)
	if len(mr.Frameworks) == 0 {
		mr.Frameworks = []string{defaultFramework}
	}
	return validate.Struct(mr)
}

type (
	MapResponse struct {
		Mappings []Mapping `json:"mappings"`
	}

	Mapping struct {
		Objective         string  `json:"objective"`
		Framework         string  `json:"framework"`
		SuggestedStandard string  `json:"suggested_standard"`
		Confidence        float64 `json:"confidence"`
	}
)
