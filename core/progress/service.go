package progress

import "github.com/trezcool/mindcanvas/core"

type (
	Service interface {
		Track(tr TrackRequest) (TrackResponse, error)
	}

	service struct{}
)

func NewService() Service {
	return &service{}
}

// Track averages score/max_score per standard, in first-seen standard order.
func (svc *service) Track(tr TrackRequest) (TrackResponse, error) {
	order := make([]string, 0)
	ratios := make(map[string][]float64)
	for _, e := range tr.Entries {
		if _, seen := ratios[e.Standard]; !seen {
			order = append(order, e.Standard)
		}
		ratios[e.Standard] = append(ratios[e.Standard], e.ratio())
	}

	mastery := make([]Mastery, 0, len(order))
	for _, std := range order {
		rs := ratios[std]
		var sum float64
		for _, r := range rs {
			sum += r
		}
		mastery = append(mastery, Mastery{
			Standard:   std,
			AvgMastery: core.Round(sum/float64(len(rs)), 3),
			Samples:    len(rs),
		})
	}
	return TrackResponse{Mastery: mastery}, nil
}
