package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/container/v1"

	"github.com/cloudsweep/cloudsweep/janitor"
	"github.com/cloudsweep/cloudsweep/types"
)

// Clusters sweeps GKE clusters. The API lists every cluster in the project
// with a single wildcard-location call and offers no continuation token, so
// the kind has no per-location loop.
func (c *Clients) Clusters() janitor.Kind {
	return janitor.Kind{
		Name: "clusters",
		ListPage: func(ctx context.Context, _, _ string) (janitor.Page, error) {
			parent := fmt.Sprintf("projects/%s/locations/-", c.Project)
			resp, err := c.Container.Projects.Locations.Clusters.List(parent).Context(ctx).Do()
			if err != nil {
				return janitor.Page{}, err
			}
			var page janitor.Page
			for _, cluster := range resp.Clusters {
				page.Resources = append(page.Resources, clusterResource(cluster))
			}
			return page, nil
		},
		Delete: func(ctx context.Context, r types.Resource) error {
			name := fmt.Sprintf("projects/%s/locations/%s/clusters/%s", c.Project, r.Location, r.ID)
			_, err := c.Container.Projects.Locations.Clusters.Delete(name).Context(ctx).Do()
			return err
		},
	}
}

func clusterResource(cluster *container.Cluster) types.Resource {
	return types.Resource{
		ID:        cluster.Name,
		Kind:      "clusters",
		Name:      cluster.Name,
		Location:  cluster.Zone,
		Labels:    cluster.ResourceLabels,
		Timestamp: cluster.CreateTime,
	}
}
