package conference

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var inviteTmpl = template.Must(template.New("invite").Funcs(template.FuncMap{"join": strings.Join}).Parse(
	`Hello {{join .Guardians ", "}},

I'd like to meet regarding {{.StudentName}}. Here are some proposed times:
{{range $i, $p := .Proposals}}{{if $i}}
{{end}}- {{$p.StartISO}} to {{$p.EndISO}} ({{$p.Modality}}){{end}}

Best,
{{.Signature}}`))

type (
	Service interface {
		Schedule(sr ScheduleRequest) (ScheduleResponse, error)
	}

	service struct {
		signature string
	}
)

// NewService returns a conference Service signing invites with `signature`.
func NewService(signature string) Service {
	return &service{signature: signature}
}

// Schedule proposes the first availability blocks, all with the first preferred modality.
func (svc *service) Schedule(sr ScheduleRequest) (ScheduleResponse, error) {
	modality := defaultModality
	if len(sr.PreferredModalities) > 0 {
		modality = sr.PreferredModalities[0]
	}

	blocks := sr.TeacherAvailabilityBlocks
	if len(blocks) > maxProposals {
		blocks = blocks[:maxProposals]
	}
	proposals := make([]Proposal, 0, len(blocks))
	for _, blk := range blocks {
		proposals = append(proposals, Proposal{StartISO: blk.StartISO, EndISO: blk.EndISO, Modality: modality})
	}

	var invite strings.Builder
	data := struct {
		Guardians   []string
		StudentName string
		Proposals   []Proposal
		Signature   string
	}{sr.Guardians, sr.StudentName, proposals, svc.signature}
	if err := inviteTmpl.Execute(&invite, data); err != nil {
		return ScheduleResponse{}, errors.Wrap(err, "conference.Schedule")
	}

	return ScheduleResponse{Proposals: proposals, InviteDraft: invite.String()}, nil
}
