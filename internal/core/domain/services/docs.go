// Package services contains stateless domain services that operate across
// aggregates: the delivery pricing table and the parcel statistics
// aggregator. Both are pure computations with no persistence access.
package services
