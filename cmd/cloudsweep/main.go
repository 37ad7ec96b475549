// Cloudsweep - scheduled janitor for stale GCP resources
// List. Filter. Delete. Exit.
package main

func main() {
	Execute()
}
