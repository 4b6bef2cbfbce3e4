// Package kernel provides the value objects shared by the job catalogue's
// domain model.
//
// The package includes:
//   - UUID: problem identifiers
//   - Location: a matrix index, optional lon/lat coordinates, or both
//   - Amount: a capacity vector with delivery/pickup masking
//   - Duration, UserDuration, DurationScale: internal and user time units
//   - TimeWindow: an inclusive [start, end] interval
//   - Skills: a sorted set of capability tags
//   - Priority, PriorityRange: job priority and its configured bounds
//
// Values are immutable once constructed and safe for concurrent reads.
package kernel
