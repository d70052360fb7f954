package standards

type (
	// Classifier suggests a standard of `framework` for an objective, with a confidence in [0, 1].
	Classifier interface {
		Classify(objective, framework string) (standard string, confidence float64)
	}

	Service interface {
		Map(mr MapRequest) (MapResponse, error)
	}

	service struct {
		classifier Classifier
	}
)

// FixedClassifier suggests the same standard for every objective.
type FixedClassifier struct{}

var _ Classifier = FixedClassifier{}

func (FixedClassifier) Classify(string, string) (string, float64) {
	return "RL.5.2", 0.72
}

// NewService returns a standards Service; a nil classifier falls back to FixedClassifier.
func NewService(classifier Classifier) Service {
	if classifier == nil {
		classifier = FixedClassifier{}
	}
	return &service{classifier: classifier}
}

// Map emits one mapping per objective, against the first requested framework only.
func (svc *service) Map(mr MapRequest) (MapResponse, error) {
	framework := defaultFramework
	if len(mr.Frameworks) > 0 {
		framework = mr.Frameworks[0]
	}

	mappings := make([]Mapping, 0, len(mr.Objectives))
	for _, obj := range mr.Objectives {
		std, conf := svc.classifier.Classify(obj, framework)
		mappings = append(mappings, Mapping{
			Objective:         obj,
			Framework:         framework,
			SuggestedStandard: std,
			Confidence:        conf,
		})
	}
	return MapResponse{Mappings: mappings}, nil
}
