package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/redis/v1"

	"github.com/cloudsweep/cloudsweep/janitor"
	"github.com/cloudsweep/cloudsweep/types"
)

// RedisInstances sweeps Memorystore Redis instances across the given regions.
func (c *Clients) RedisInstances(regions []string) janitor.Kind {
	return janitor.Kind{
		Name:      "redis-instances",
		Locations: regions,
		ListPage: func(ctx context.Context, region, pageToken string) (janitor.Page, error) {
			parent := fmt.Sprintf("projects/%s/locations/%s", c.Project, region)
			resp, err := c.Redis.Projects.Locations.Instances.List(parent).
				PageToken(pageToken).Context(ctx).Do()
			if err != nil {
				return janitor.Page{}, err
			}
			page := janitor.Page{NextPageToken: resp.NextPageToken}
			for _, inst := range resp.Instances {
				page.Resources = append(page.Resources, redisInstanceResource(inst, region))
			}
			return page, nil
		},
		Delete: func(ctx context.Context, r types.Resource) error {
			_, err := c.Redis.Projects.Locations.Instances.Delete(r.Name).Context(ctx).Do()
			return err
		},
	}
}

func redisInstanceResource(inst *redis.Instance, region string) types.Resource {
	return types.Resource{
		ID:        lastSegment(inst.Name),
		Kind:      "redis-instances",
		Name:      inst.Name,
		Location:  region,
		Labels:    inst.Labels,
		Timestamp: inst.CreateTime,
	}
}
