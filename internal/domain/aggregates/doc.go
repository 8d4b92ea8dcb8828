// Package aggregates defines domain-facing aggregate contracts and the error
// codes shared by every layer.
//
// Contracts avoid persistence/transport details and mark the write boundaries
// where an activity log and its detail record must change together.
package aggregates
