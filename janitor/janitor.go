// Package janitor holds the generic enumerate+filter+delete engine. Each
// resource kind plugs in as a small capability record; the engine owns
// pagination, the staleness/protection filter, and the error tolerance
// policy around locations and individual deletes.
package janitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloudsweep/cloudsweep/telemetry"
	"github.com/cloudsweep/cloudsweep/types"
)

// Page is one page of a listing call.
type Page struct {
	Resources     []types.Resource
	NextPageToken string
}

// ListPageFunc fetches one page of resources. location is empty for kinds
// listed with a single wildcard call. A lister whose API has no continuation
// mechanism returns an empty token and the enumerator stops normally.
type ListPageFunc func(ctx context.Context, location, pageToken string) (Page, error)

// DeleteFunc deletes a single resource.
type DeleteFunc func(ctx context.Context, r types.Resource) error

// Kind describes one sweepable resource kind: how to list it, where, and
// how to delete one of it. The filter fields come from the Resource the
// lister builds.
type Kind struct {
	// Name is the plural kind name, used in logs and metrics.
	Name string

	// Locations to enumerate. nil means the kind is listed with a single
	// wildcard call and gets no per-location error tolerance.
	Locations []string

	ListPage ListPageFunc
	Delete   DeleteFunc
}

func (k Kind) validate() error {
	if k.Name == "" {
		return fmt.Errorf("%w: kind has no name", ErrMisconfiguredKind)
	}
	if k.ListPage == nil {
		return fmt.Errorf("%w: kind %q has no lister", ErrMisconfiguredKind, k.Name)
	}
	if k.Delete == nil {
		return fmt.Errorf("%w: kind %q has no deleter", ErrMisconfiguredKind, k.Name)
	}
	return nil
}

// singular returns the kind name for single-resource log lines.
func singular(name string) string {
	return strings.TrimSuffix(name, "s")
}

// Options configures a Janitor.
type Options struct {
	SkipLabel string
	MaxAge    time.Duration
	DryRun    bool

	// Now is the clock used by the staleness check. Defaults to time.Now.
	Now func() time.Time
}

// Janitor enumerates resources, filters them, and deletes the survivors.
// It is stateless: nothing persists between runs.
type Janitor struct {
	logger    zerolog.Logger
	metrics   *telemetry.SweepMetrics
	skipLabel string
	maxAge    time.Duration
	dryRun    bool
	now       func() time.Time
}

// New creates a Janitor. metrics may be nil.
func New(logger zerolog.Logger, metrics *telemetry.SweepMetrics, opts Options) *Janitor {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Janitor{
		logger:    logger,
		metrics:   metrics,
		skipLabel: opts.SkipLabel,
		maxAge:    opts.MaxAge,
		dryRun:    opts.DryRun,
		now:       opts.Now,
	}
}

// Run sweeps every kind in order. A kind's failure is logged and does not
// stop later kinds; the only error Run returns is a misconfigured kind,
// which is a programming error and is rejected before any API call.
func (j *Janitor) Run(ctx context.Context, kinds []Kind) error {
	for _, k := range kinds {
		if err := k.validate(); err != nil {
			return err
		}
	}

	for _, k := range kinds {
		j.logger.Info().Str("kind", k.Name).Msg("sweeping")
		if err := j.SweepKind(ctx, k); err != nil {
			j.logger.Error().Err(err).Str("kind", k.Name).Msg("sweep of kind failed")
			j.metrics.RecordKindFailed(ctx, k.Name)
			continue
		}
		j.logger.Info().Str("kind", k.Name).Msg("sweep of kind done")
	}
	return nil
}

// SweepKind runs one kind's enumerate+filter+delete routine across its
// locations. Per-location server errors (HTTP >= 500) and scope mismatches
// are tolerated; any other failure aborts the kind.
func (j *Janitor) SweepKind(ctx context.Context, k Kind) error {
	if k.Locations == nil {
		return j.sweepLocation(ctx, k, "")
	}

	for _, location := range k.Locations {
		j.logger.Debug().Str("kind", k.Name).Str("location", location).Msg("sweeping location")
		err := j.sweepLocation(ctx, k, location)
		switch {
		case err == nil:
		case IsServerError(err):
			j.logger.Warn().Err(err).Str("kind", k.Name).Str("location", location).
				Msg("server error, skipping location")
		case IsUnexpectedLocation(err):
			j.logger.Debug().Str("kind", k.Name).Str("location", location).
				Msg("location not valid for kind, skipping")
		default:
			return err
		}
	}
	return nil
}

func (j *Janitor) sweepLocation(ctx context.Context, k Kind, location string) error {
	resources, err := j.enumerate(ctx, k, location)
	if err != nil {
		return err
	}
	j.metrics.RecordSeen(ctx, k.Name, len(resources))

	for _, r := range resources {
		eligible, reason, err := j.eligible(r)
		if err != nil {
			return err
		}
		if !eligible {
			j.logger.Debug().Str("kind", k.Name).Str("id", r.ID).Str("reason", reason).
				Msg("skipping resource")
			j.metrics.RecordSkipped(ctx, k.Name, reason)
			continue
		}
		j.deleteOne(ctx, k, r)
	}
	return nil
}

// enumerate follows pagination tokens until the listing source reports no
// further page, returning the full sequence in page order.
func (j *Janitor) enumerate(ctx context.Context, k Kind, location string) ([]types.Resource, error) {
	var all []types.Resource
	token := ""
	for {
		page, err := k.ListPage(ctx, location, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Resources...)
		if page.NextPageToken == "" {
			return all, nil
		}
		token = page.NextPageToken
	}
}

// eligible decides whether a resource gets deleted: protection label absent,
// stale, and nothing still using it. An unparseable timestamp is an error
// and aborts the kind.
func (j *Janitor) eligible(r types.Resource) (bool, string, error) {
	if r.IsProtected(j.skipLabel) {
		return false, "protected", nil
	}
	stale, err := IsStale(r.Timestamp, j.now(), j.maxAge)
	if err != nil {
		return false, "", fmt.Errorf("resource %s: %w", r.ID, err)
	}
	if !stale {
		return false, "fresh", nil
	}
	if r.InUse() {
		return false, "in_use", nil
	}
	return true, "", nil
}

// deleteOne deletes a single resource. Failures are logged and swallowed;
// no retry, and the rest of the location keeps going.
func (j *Janitor) deleteOne(ctx context.Context, k Kind, r types.Resource) {
	name := singular(k.Name)

	if j.dryRun {
		j.logger.Info().Str("kind", name).Str("id", r.ID).Msg("would delete (dry run)")
		j.metrics.RecordSkipped(ctx, k.Name, "dry_run")
		return
	}

	j.logger.Info().Str("kind", name).Str("id", r.ID).Msg("deleting")
	if err := k.Delete(ctx, r); err != nil {
		j.logger.Warn().Err(err).Str("kind", name).Str("id", r.ID).Msg("failed to delete")
		j.metrics.RecordDeleteFailed(ctx, k.Name)
		return
	}
	j.metrics.RecordDeleted(ctx, k.Name)
}
