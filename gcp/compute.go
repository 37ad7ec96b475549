package gcp

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/compute/v1"

	"github.com/cloudsweep/cloudsweep/janitor"
	"github.com/cloudsweep/cloudsweep/types"
)

// RegionsAndZones lists every region name and zone name visible to the
// project. Discovered once per run and shared by all location-scoped kinds.
func (c *Clients) RegionsAndZones(ctx context.Context) (regions, zones []string, err error) {
	err = c.Compute.Regions.List(c.Project).Pages(ctx, func(page *compute.RegionList) error {
		for _, region := range page.Items {
			regions = append(regions, region.Name)
			for _, zoneURL := range region.Zones {
				zones = append(zones, lastSegment(zoneURL))
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, zones, nil
}

// Instances sweeps compute instances across the given zones.
func (c *Clients) Instances(zones []string) janitor.Kind {
	return janitor.Kind{
		Name:      "instances",
		Locations: zones,
		ListPage: func(ctx context.Context, zone, pageToken string) (janitor.Page, error) {
			resp, err := c.Compute.Instances.List(c.Project, zone).
				PageToken(pageToken).Context(ctx).Do()
			if err != nil {
				return janitor.Page{}, err
			}
			page := janitor.Page{NextPageToken: resp.NextPageToken}
			for _, inst := range resp.Items {
				page.Resources = append(page.Resources, instanceResource(inst))
			}
			return page, nil
		},
		Delete: func(ctx context.Context, r types.Resource) error {
			_, err := c.Compute.Instances.Delete(c.Project, r.Location, r.ID).Context(ctx).Do()
			return err
		},
	}
}

// Disks sweeps unattached compute disks across the given zones.
func (c *Clients) Disks(zones []string) janitor.Kind {
	return janitor.Kind{
		Name:      "disks",
		Locations: zones,
		ListPage: func(ctx context.Context, zone, pageToken string) (janitor.Page, error) {
			resp, err := c.Compute.Disks.List(c.Project, zone).
				PageToken(pageToken).Context(ctx).Do()
			if err != nil {
				return janitor.Page{}, err
			}
			page := janitor.Page{NextPageToken: resp.NextPageToken}
			for _, disk := range resp.Items {
				page.Resources = append(page.Resources, diskResource(disk))
			}
			return page, nil
		},
		Delete: func(ctx context.Context, r types.Resource) error {
			_, err := c.Compute.Disks.Delete(c.Project, r.Location, r.ID).Context(ctx).Do()
			return err
		},
	}
}

// instanceResource converts a compute instance to the neutral descriptor.
// The delete zone comes from the instance's own zone URL, not the listing
// scope, so deletes survive zone-name drift.
func instanceResource(inst *compute.Instance) types.Resource {
	return types.Resource{
		ID:        strconv.FormatUint(inst.Id, 10),
		Kind:      "instances",
		Name:      inst.Name,
		Location:  lastSegment(inst.Zone),
		Labels:    inst.Labels,
		Timestamp: inst.CreationTimestamp,
	}
}

func diskResource(disk *compute.Disk) types.Resource {
	return types.Resource{
		ID:        strconv.FormatUint(disk.Id, 10),
		Kind:      "disks",
		Name:      disk.Name,
		Location:  lastSegment(disk.Zone),
		Labels:    disk.Labels,
		Timestamp: disk.CreationTimestamp,
		InUseBy:   disk.Users,
	}
}
