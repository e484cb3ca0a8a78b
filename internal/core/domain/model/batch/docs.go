// Package batch contains the Batch aggregate: a named group of
// shipments sharing one trip (route + time + date) and one vehicle.
//
// A batch moves through DRAFT -> READY -> DEPARTED -> CLOSED. Membership is
// editable only while DRAFT; a batch cannot be marked READY with zero members;
// departure requires every member shipment to still be CREATED and advances
// them all to IN_TRANSIT in one atomic transaction, or none at all.
//
// The batch coordinator is the only component allowed to move many shipments
// at once.
package batch
