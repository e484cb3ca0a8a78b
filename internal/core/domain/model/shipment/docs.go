// Package shipment contains the Shipment aggregate and its status state
// machine, the heart of the logistics engine.
//
// A Shipment is one parcel moving from an origin agency to a destination
// agency. Its lifecycle is governed by a fixed transition table (see Status);
// every state change is validated against that table before persisting and is
// paired with exactly one immutable Event appended to the audit log.
//
// Two mutations intentionally bypass the per-shipment table:
//   - Depart: the batch coordinator's bulk path moving a CREATED member to
//     IN_TRANSIT when its batch departs
//   - the degraded-mode CREATED -> ARRIVED shortcut, which IS in the table and
//     models direct agency-to-agency handoffs before a batch/vehicle exists
//
// The aggregate enforces that a shipment belongs to at most one batch at a
// time, and only while still in CREATED status.
package shipment
