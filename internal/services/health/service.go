package health

// Service encapsulates health-related checks.
type Service struct {
	provider            string
	generatorConfigured bool
}

// Status is the /healthz payload.
type Status struct {
	OK                  bool   `json:"ok"`
	Provider            string `json:"provider"`
	GeneratorConfigured bool   `json:"generatorConfigured"`
}

// NewService constructs a new health service.
func NewService(provider string, generatorConfigured bool) *Service {
	return &Service{provider: provider, generatorConfigured: generatorConfigured}
}

// Status reports liveness. Rendering works without a generator, so a
// missing credential does not make the service unhealthy.
func (s *Service) Status() Status {
	return Status{OK: true, Provider: s.provider, GeneratorConfigured: s.generatorConfigured}
}
