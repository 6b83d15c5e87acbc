// Package parcel contains the parcel aggregate and its value objects.
//
// A parcel is the central entity of the postal domain: it is created at an
// origin post office, priced by its delivery tier, moved through a fixed
// status lifecycle (CREATED -> IN_TRANSIT -> DELIVERED), and looked up by an
// opaque tracking token that never changes after creation.
//
// The package also defines Filter, the dynamic search criteria applied to
// parcel collections. A Filter is a plain struct of optional constraints;
// the Matches method is the pure AND-composition of every present constraint
// and is the single source of truth for filter semantics. Persistence
// adapters must translate a Filter into equivalent queries.
package parcel
