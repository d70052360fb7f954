package exitticket

import "unicode/utf8"

const detailedMinLen = 50

type (
	// Grouper clusters responses into labelled groups.
	Grouper interface {
		Group(responses []string, numGroups, exemplarsPerGroup int) []Group
	}

	// MisconceptionDetector lists the misconceptions found in the responses to a prompt.
	MisconceptionDetector interface {
		Detect(prompt string, responses []string) []string
	}
)

// LengthGrouper always splits responses in two groups by length, whatever numGroups is.
type LengthGrouper struct{}

var _ Grouper = LengthGrouper{}

func (LengthGrouper) Group(responses []string, _, _ int) []Group {
	concise := Group{Group: 1, Label: "Concise", Responses: []string{}}
	detailed := Group{Group: 2, Label: "Detailed", Responses: []string{}}
	for _, r := range responses {
		if utf8.RuneCountInString(r) < detailedMinLen {
			concise.Responses = append(concise.Responses, r)
		} else {
			detailed.Responses = append(detailed.Responses, r)
		}
	}
	return []Group{concise, detailed}
}

// FixedMisconceptions reports the same misconception for every prompt.
type FixedMisconceptions struct{}

var _ MisconceptionDetector = FixedMisconceptions{}

func (FixedMisconceptions) Detect(string, []string) []string {
	return []string{"Confuses chlorophyll with sugar synthesis"}
}
