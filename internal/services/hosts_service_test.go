package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestListCommunityHosts(t *testing.T) {
	t.Parallel()

	svc := NewHostsService()

	hosts := svc.ListCommunityHosts(context.Background())
	require.Len(t, hosts, 2)
	require.Equal(t, "Meera Sharma", hosts[0].Name)
	require.Equal(t, "Ravi Kumar", hosts[1].Name)

	for _, host := range hosts {
		_, err := uuid.Parse(host.ID)
		require.NoError(t, err)
		require.NotEmpty(t, host.Services)
		require.Greater(t, host.Rating, 4.0)
	}

	// IDs are stable across fetches.
	again := svc.ListCommunityHosts(context.Background())
	require.Equal(t, hosts[0].ID, again[0].ID)
	require.Equal(t, hosts[1].ID, again[1].ID)
}
