/*
Package domain contains the fleet record assembled by an interview and the
invariants that gate every change to it.

The package is pure: it has no I/O and no knowledge of how answers are parsed.
Mutation goes through methods on FleetRecord so the brand-indexed slices stay in
step with each other.

# Key Entities

  - FleetRecord: owner identity, brand list, per-brand counts and flags, recorded truck groups.
  - ModelSpec: identity and attributes of one truck model.
  - TruckGroup: a ModelSpec together with the number of trucks of that model.
  - CheckConsistency / CheckBrandComplete: arithmetic invariants over the record.
*/
package domain
