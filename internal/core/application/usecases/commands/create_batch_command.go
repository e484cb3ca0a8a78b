package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrRouteCodeIsRequired     = errors.New("route code is required")
	ErrDepartureTimeIsRequired = errors.New("departure time is required")
	ErrTripDateIsRequired      = errors.New("trip date is required")
)

// CreateBatchCommand represents a request to open an empty dispatch batch
// for one physical trip. The trip is identified by route, scheduled
// departure time and date; two batches for the same trip share the same trip
// key and the second create is rejected by the unique constraint.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID        kernel.UUID
	originAgencyID kernel.UUID
	routeCode      string
	departureTime  string
	tripDate       time.Time
	vehicleID      kernel.UUID
	createdBy      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to open a dispatch batch.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	originAgencyID kernel.UUID,
	routeCode string,
	departureTime string,
	tripDate time.Time,
	vehicleID kernel.UUID,
	createdBy kernel.UUID,
) (CreateBatchCommand, error) {
	cmd := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setOriginAgencyID(originAgencyID),
		cmd.setRouteCode(routeCode),
		cmd.setDepartureTime(departureTime),
		cmd.setTripDate(tripDate),
		cmd.setVehicleID(vehicleID),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the identifier for the batch to create.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OriginAgencyID returns the dispatching agency.
func (c CreateBatchCommand) OriginAgencyID() kernel.UUID {
	return c.originAgencyID
}

// RouteCode returns the route the trip runs on.
func (c CreateBatchCommand) RouteCode() string {
	return c.routeCode
}

// DepartureTime returns the scheduled departure time, e.g. "08h".
func (c CreateBatchCommand) DepartureTime() string {
	return c.departureTime
}

// TripDate returns the calendar date of the trip.
func (c CreateBatchCommand) TripDate() time.Time {
	return c.tripDate
}

// VehicleID returns the vehicle assigned to the trip.
func (c CreateBatchCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// CreatedBy returns the user opening the batch.
func (c CreateBatchCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setOriginAgencyID(originAgencyID kernel.UUID) error {
	if err := originAgencyID.Validate(); err != nil {
		return err
	}

	c.originAgencyID = originAgencyID
	return nil
}

func (c *CreateBatchCommand) setRouteCode(routeCode string) error {
	if routeCode == "" {
		return ErrRouteCodeIsRequired
	}

	c.routeCode = routeCode
	return nil
}

func (c *CreateBatchCommand) setDepartureTime(departureTime string) error {
	if departureTime == "" {
		return ErrDepartureTimeIsRequired
	}

	c.departureTime = departureTime
	return nil
}

func (c *CreateBatchCommand) setTripDate(tripDate time.Time) error {
	if tripDate.IsZero() {
		return ErrTripDateIsRequired
	}

	c.tripDate = tripDate
	return nil
}

func (c *CreateBatchCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateBatchCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
