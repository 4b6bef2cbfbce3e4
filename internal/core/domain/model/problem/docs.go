// Package problem provides the Problem aggregate: the set of jobs a routing
// request is made of, built once by the problem loader and then read-only.
//
// The package enforces the cross-job rules a single Job cannot see:
//   - every job's amounts share the problem's dimensionality
//   - job identifiers are unique within a problem
//   - all jobs are built with the same duration scale and priority bounds
package problem
