package gcp

import (
	"context"

	"google.golang.org/api/dataproc/v1"

	"github.com/cloudsweep/cloudsweep/janitor"
	"github.com/cloudsweep/cloudsweep/types"
)

// DataprocClusters sweeps Dataproc clusters across the given regions.
// Staleness is judged from the start of the cluster's current state, not
// its creation time, so a long-lived but recently active cluster survives.
func (c *Clients) DataprocClusters(regions []string) janitor.Kind {
	return janitor.Kind{
		Name:      "dataproc-clusters",
		Locations: regions,
		ListPage: func(ctx context.Context, region, pageToken string) (janitor.Page, error) {
			resp, err := c.Dataproc.Projects.Regions.Clusters.List(c.Project, region).
				PageToken(pageToken).Context(ctx).Do()
			if err != nil {
				return janitor.Page{}, err
			}
			page := janitor.Page{NextPageToken: resp.NextPageToken}
			for _, cluster := range resp.Clusters {
				page.Resources = append(page.Resources, dataprocClusterResource(cluster, region))
			}
			return page, nil
		},
		Delete: func(ctx context.Context, r types.Resource) error {
			_, err := c.Dataproc.Projects.Regions.Clusters.Delete(c.Project, r.Location, r.ID).
				Context(ctx).Do()
			return err
		},
	}
}

func dataprocClusterResource(cluster *dataproc.Cluster, region string) types.Resource {
	r := types.Resource{
		ID:       cluster.ClusterName,
		Kind:     "dataproc-clusters",
		Name:     cluster.ClusterName,
		Location: region,
		Labels:   cluster.Labels,
	}
	if cluster.Status != nil {
		r.Timestamp = cluster.Status.StateStartTime
	}
	return r
}
