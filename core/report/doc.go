// Package report presents and publishes reconciliation plans.
//
// RenderPlan prints a plan as console tables. Publisher writes the new entries as
// a JSON file shaped like the catalog, guarded by a file lock next to the output,
// and uploads a timestamped copy to object storage when a client is configured.
// An empty plan writes nothing.
package report
