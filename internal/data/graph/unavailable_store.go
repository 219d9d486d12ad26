package graph

import (
	"context"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
)

// UnavailableStore stands in for a graph that could not be reached at
// startup. Every call fails with the original connection error, so health
// checks report unhealthy and seeds fail without taking the server down.
type UnavailableStore struct {
	err error
}

func NewUnavailableStore(err error) *UnavailableStore {
	return &UnavailableStore{err: err}
}

func (s *UnavailableStore) Err() error { return s.err }

func (s *UnavailableStore) EnsureSchema(context.Context) error { return s.err }

func (s *UnavailableStore) UpsertDisease(context.Context, string, medical.DiseaseMetadata) error {
	return s.err
}

func (s *UnavailableStore) LinkEntity(context.Context, string, medical.Category, string) error {
	return s.err
}

func (s *UnavailableStore) Reset(context.Context) error { return s.err }

func (s *UnavailableStore) CountNodes(context.Context) (int64, error) { return 0, s.err }

func (s *UnavailableStore) CountRelationships(context.Context) (int64, error) { return 0, s.err }

func (s *UnavailableStore) NodeDistribution(context.Context) ([]LabelCount, error) {
	return nil, s.err
}

func (s *UnavailableStore) MatchDiseasesBySymptoms(context.Context, []string, int) ([]DiseaseMatch, error) {
	return nil, s.err
}

func (s *UnavailableStore) DiseaseProfile(context.Context, string) (*DiseaseProfile, bool, error) {
	return nil, false, s.err
}
