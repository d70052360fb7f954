package exitticket

type (
	Service interface {
		Analyze(ar AnalyzeRequest) (AnalyzeResponse, error)
	}

	service struct {
		grouper  Grouper
		detector MisconceptionDetector
	}
)

// NewService returns an exit ticket Service; nil strategies fall back to LengthGrouper and FixedMisconceptions.
func NewService(grouper Grouper, detector MisconceptionDetector) Service {
	if grouper == nil {
		grouper = LengthGrouper{}
	}
	if detector == nil {
		detector = FixedMisconceptions{}
	}
	return &service{grouper: grouper, detector: detector}
}

func (svc *service) Analyze(ar AnalyzeRequest) (AnalyzeResponse, error) {
	numGroups, exemplars := defaultNumGroups, defaultExemplars
	if ar.NumGroups != nil {
		numGroups = *ar.NumGroups
	}
	if ar.ReturnExemplarsPerGroup != nil {
		exemplars = *ar.ReturnExemplarsPerGroup
	}

	return AnalyzeResponse{
		Groups:         svc.grouper.Group(ar.Responses, numGroups, exemplars),
		Misconceptions: svc.detector.Detect(ar.Prompt, ar.Responses),
	}, nil
}
