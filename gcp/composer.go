package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/composer/v1"

	"github.com/cloudsweep/cloudsweep/janitor"
	"github.com/cloudsweep/cloudsweep/types"
)

// ComposerEnvironments sweeps Cloud Composer environments across the given
// regions. Staleness is judged from the environment's last update time.
func (c *Clients) ComposerEnvironments(regions []string) janitor.Kind {
	return janitor.Kind{
		Name:      "environments",
		Locations: regions,
		ListPage: func(ctx context.Context, region, pageToken string) (janitor.Page, error) {
			parent := fmt.Sprintf("projects/%s/locations/%s", c.Project, region)
			resp, err := c.Composer.Projects.Locations.Environments.List(parent).
				PageToken(pageToken).Context(ctx).Do()
			if err != nil {
				return janitor.Page{}, err
			}
			page := janitor.Page{NextPageToken: resp.NextPageToken}
			for _, env := range resp.Environments {
				page.Resources = append(page.Resources, environmentResource(env, region))
			}
			return page, nil
		},
		Delete: func(ctx context.Context, r types.Resource) error {
			// Environments are deleted by their full resource name.
			_, err := c.Composer.Projects.Locations.Environments.Delete(r.Name).Context(ctx).Do()
			return err
		},
	}
}

func environmentResource(env *composer.Environment, region string) types.Resource {
	return types.Resource{
		ID:        lastSegment(env.Name),
		Kind:      "environments",
		Name:      env.Name,
		Location:  region,
		Labels:    env.Labels,
		Timestamp: env.UpdateTime,
	}
}
