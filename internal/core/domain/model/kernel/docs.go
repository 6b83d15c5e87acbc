// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation, designed to be embedded
// in aggregates and entities throughout the postal domain.
package kernel
