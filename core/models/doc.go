// Package models defines the records passed between the harvester, the reconcile
// engine, and the report writers.
package models
