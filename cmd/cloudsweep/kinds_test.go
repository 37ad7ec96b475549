package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsweep/cloudsweep/gcp"
)

func kindNames(t *testing.T, regions, zones, only []string) []string {
	t.Helper()

	kinds, err := buildKinds(&gcp.Clients{Project: "p"}, regions, zones, only)
	require.NoError(t, err)

	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Name)
	}
	return names
}

func TestBuildKindsOrder(t *testing.T) {
	names := kindNames(t, []string{"r1"}, []string{"z1"}, nil)

	assert.Equal(t, []string{
		"environments",
		"clusters",
		"dataproc-clusters",
		"instances",
		"disks",
		"redis-instances",
	}, names)
}

func TestBuildKindsOnlyKeepsCanonicalOrder(t *testing.T) {
	// flag order must not override the dependency order
	names := kindNames(t, []string{"r1"}, []string{"z1"}, []string{"disks", "instances"})

	assert.Equal(t, []string{"instances", "disks"}, names)
}

func TestBuildKindsRejectsUnknown(t *testing.T) {
	_, err := buildKinds(&gcp.Clients{Project: "p"}, nil, nil, []string{"buckets"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buckets")
}

func TestBuildKindsLocationScopes(t *testing.T) {
	regions := []string{"europe-west1"}
	zones := []string{"europe-west1-b", "europe-west1-c"}

	kinds, err := buildKinds(&gcp.Clients{Project: "p"}, regions, zones, nil)
	require.NoError(t, err)

	for _, k := range kinds {
		switch k.Name {
		case "clusters":
			assert.Nil(t, k.Locations, "GKE uses a single wildcard listing")
		case "instances", "disks":
			assert.Equal(t, zones, k.Locations)
		default:
			assert.Equal(t, regions, k.Locations)
		}
	}
}
