package conference

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

var (
	endAfterStartTag  = "endafterstart"
	endAfterStartText = "{0} must be after start_iso"
)

// InitValidators registers the conference struct validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(blockStructValidation, AvailabilityBlock{})
	core.RegisterCustomTranslation(validate, translator, endAfterStartTag, endAfterStartText)
}

// blockStructValidation checks that a block ends after it starts.
// Unparsable timestamps are left to the `isotime` tag.
func blockStructValidation(sl validator.StructLevel) {
	blk := sl.Current().Interface().(AvailabilityBlock)
	start, ok := core.ParseISOTime(blk.StartISO)
	if !ok {
		return
	}
	end, ok := core.ParseISOTime(blk.EndISO)
	if !ok {
		return
	}
	if !end.After(start) {
		sl.ReportError(blk.EndISO, "end_iso", "EndISO", endAfterStartTag, "")
	}
}
