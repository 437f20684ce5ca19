package repository

import (
	"context"
	"sort"
	"testing"

	"car-rental/internal/data/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVehicleRepository_FindAll_ReturnsFreshSlice(t *testing.T) {
	repo := NewVehicleRepository(fixture.Vehicles(), zap.NewNop())
	ctx := context.Background()

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 8)

	// Reordering the returned slice must not leak into later reads
	sort.Slice(first, func(i, j int) bool {
		return first[i].Price < first[j].Price
	})

	second, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "car-1", second[0].ID)
	assert.Equal(t, "car-8", second[7].ID)
}

func TestVehicleRepository_FindByID(t *testing.T) {
	repo := NewVehicleRepository(fixture.Vehicles(), zap.NewNop())
	ctx := context.Background()

	vehicle, err := repo.FindByID(ctx, "car-6")
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, "Tesla Model S Plaid", vehicle.Name)

	vehicle, err = repo.FindByID(ctx, "car-99")
	require.NoError(t, err)
	assert.Nil(t, vehicle)
}
