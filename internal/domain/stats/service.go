package stats

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (Summary, error) {
	sum, err := s.repo.Summary(ctx)
	if err != nil {
		return Summary{}, err
	}
	if sum.BySpecies == nil {
		sum.BySpecies = []SpeciesCount{}
	}
	return sum, nil
}
