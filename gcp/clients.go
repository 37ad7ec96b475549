// Package gcp adapts the GCP discovery-style management APIs to the
// janitor's kind records. Field names and delete parameter shapes follow
// the documented API schemas exactly.
package gcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/composer/v1"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/container/v1"
	"google.golang.org/api/dataproc/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/redis/v1"
)

// Clients bundles the per-service API clients for one project. Credentials
// come from the environment via Application Default Credentials; the project
// comes from config or, failing that, from the credentials themselves.
type Clients struct {
	Project   string
	Compute   *compute.Service
	Container *container.Service
	Dataproc  *dataproc.Service
	Composer  *composer.Service
	Redis     *redis.Service
}

// NewClients constructs all service clients. project may be empty, in which
// case it is resolved from the default credentials.
func NewClients(ctx context.Context, project string, opts ...option.ClientOption) (*Clients, error) {
	if project == "" {
		creds, err := google.FindDefaultCredentials(ctx, compute.CloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed to discover default credentials: %w", err)
		}
		if creds.ProjectID == "" {
			return nil, errors.New("no project configured and none in default credentials")
		}
		project = creds.ProjectID
	}

	computeSvc, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}
	containerSvc, err := container.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create container client: %w", err)
	}
	dataprocSvc, err := dataproc.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataproc client: %w", err)
	}
	composerSvc, err := composer.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create composer client: %w", err)
	}
	redisSvc, err := redis.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	return &Clients{
		Project:   project,
		Compute:   computeSvc,
		Container: containerSvc,
		Dataproc:  dataprocSvc,
		Composer:  composerSvc,
		Redis:     redisSvc,
	}, nil
}

// lastSegment returns the part of a resource URL after the final slash.
// Zone and name fields in list responses are full URLs or paths.
func lastSegment(url string) string {
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}
