package conference

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

// Modalities
const (
	ModalityInPerson = "in_person"
	ModalityZoom     = "zoom"
	ModalityPhone    = "phone"
)

const (
	defaultModality = ModalityZoom
	defaultLanguage = "English"
	maxProposals    = 3
)

type AvailabilityBlock struct {
	StartISO string `json:"start_iso" validate:"required,isotime"`
	EndISO   string `json:"end_iso" validate:"required,isotime"`
}

// ScheduleRequest contains what is needed to propose a parent conference.
// Language is accepted but invites are only drafted in English for now.
type ScheduleRequest struct {
	StudentName               string              `json:"student_name" validate:"required,notblank"`
	Guardians                 []string            `json:"guardians" validate:"required,min=1,dive,notblank"`
	PreferredModalities       []string            `json:"preferred_modalities" validate:"omitempty,dive,oneof=in_person zoom phone"`
	TeacherAvailabilityBlocks []AvailabilityBlock `json:"teacher_availability_blocks" validate:"required,min=1,dive"`
	Language                  string              `json:"language"`
}

func (sr *ScheduleRequest) Validate(validate *validator.Validate) error {
	sr.StudentName = core.CleanString(sr.StudentName)
	core.CleanStrings(sr.Guardians)
	core.CleanStrings(sr.PreferredModalities)
	// only the first blocks are ever proposed
	if len(sr.TeacherAvailabilityBlocks) > maxProposals {
		sr.TeacherAvailabilityBlocks = sr.TeacherAvailabilityBlocks[:maxProposals]
	}
	for i := range sr.TeacherAvailabilityBlocks {
		blk := &sr.TeacherAvailabilityBlocks[i]
		blk.StartISO = core.CleanString(blk.StartISO)
		blk.EndISO = core.CleanString(blk.EndISO)
	}
	sr.Language = core.CleanString(sr.Language)
	if sr.Language == "" {
		sr.Language = defaultLanguage
	}
	return validate.Struct(sr)
}

type (
	ScheduleResponse struct {
		Proposals   []Proposal `json:"proposals"`
		InviteDraft string     `json:"invite_draft"`
	}

	Proposal struct {
		StartISO string `json:"start_iso"`
		EndISO   string `json:"end_iso"`
		Modality string `json:"modality"`
	}
)
