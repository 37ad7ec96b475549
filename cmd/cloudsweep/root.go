package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "cloudsweep",
		Short: "Stale GCP resource janitor",
		Long: `Cloudsweep - Stale GCP resource janitor

Cloudsweep deletes stale resources from a playground or CI project:
Composer environments, GKE clusters, Dataproc clusters, compute
instances and disks, and Memorystore Redis instances.

Anything labeled "please-do-not-kill-me" is left alone, whatever its
age. Everything else older than the staleness threshold goes.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the root command
func init() {
	rootCmd.SetVersionTemplate(`Cloudsweep {{.Version}} - Stale GCP resource janitor
`)
}
