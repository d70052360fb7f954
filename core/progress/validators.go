package progress

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

var (
	scoreCeilingTag  = "scoreceiling"
	scoreCeilingText = "{0} cannot exceed max_score"
)

// InitValidators registers the progress struct validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(entryStructValidation, Entry{})
	core.RegisterCustomTranslation(validate, translator, scoreCeilingTag, scoreCeilingText)
}

// entryStructValidation checks that score does not exceed max_score.
func entryStructValidation(sl validator.StructLevel) {
	e := sl.Current().Interface().(Entry)
	if e.Score == nil || e.MaxScore == nil {
		return
	}
	if *e.Score > *e.MaxScore {
		sl.ReportError(*e.Score, "score", "Score", scoreCeilingTag, "")
	}
}
