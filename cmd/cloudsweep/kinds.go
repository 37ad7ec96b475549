package main

import (
	"fmt"

	"github.com/cloudsweep/cloudsweep/gcp"
	"github.com/cloudsweep/cloudsweep/janitor"
)

// kindOrder is the deletion order: dependent resources (environments,
// clusters) go before the compute primitives they may be holding.
var kindOrder = []string{
	"environments",
	"clusters",
	"dataproc-clusters",
	"instances",
	"disks",
	"redis-instances",
}

// buildKinds assembles the kind records to sweep, in canonical order. only
// restricts the set when non-empty; order on the flag is irrelevant.
func buildKinds(c *gcp.Clients, regions, zones, only []string) ([]janitor.Kind, error) {
	byName := map[string]func() janitor.Kind{
		"environments":      func() janitor.Kind { return c.ComposerEnvironments(regions) },
		"clusters":          func() janitor.Kind { return c.Clusters() },
		"dataproc-clusters": func() janitor.Kind { return c.DataprocClusters(regions) },
		"instances":         func() janitor.Kind { return c.Instances(zones) },
		"disks":             func() janitor.Kind { return c.Disks(zones) },
		"redis-instances":   func() janitor.Kind { return c.RedisInstances(regions) },
	}

	selected := make(map[string]bool, len(only))
	for _, name := range only {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown kind %q (known: %v)", name, kindOrder)
		}
		selected[name] = true
	}

	var kinds []janitor.Kind
	for _, name := range kindOrder {
		if len(selected) > 0 && !selected[name] {
			continue
		}
		kinds = append(kinds, byName[name]())
	}
	return kinds, nil
}
