package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
)

func TestUnavailableStoreFailsEveryCall(t *testing.T) {
	down := errors.New("connection refused")
	s := NewUnavailableStore(down)
	ctx := context.Background()

	require.ErrorIs(t, s.EnsureSchema(ctx), down)
	require.ErrorIs(t, s.UpsertDisease(ctx, "Flu", medical.DiseaseMetadata{}), down)
	require.ErrorIs(t, s.LinkEntity(ctx, "Flu", medical.Categories[0], "Fever"), down)
	require.ErrorIs(t, s.Reset(ctx), down)

	_, err := s.CountNodes(ctx)
	require.ErrorIs(t, err, down)
	_, err = s.CountRelationships(ctx)
	require.ErrorIs(t, err, down)
	_, err = s.NodeDistribution(ctx)
	require.ErrorIs(t, err, down)
	_, err = s.MatchDiseasesBySymptoms(ctx, []string{"fever"}, 0)
	require.ErrorIs(t, err, down)
	_, found, err := s.DiseaseProfile(ctx, "Flu")
	require.ErrorIs(t, err, down)
	require.False(t, found)
	require.Equal(t, down, s.Err())
}
