package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents an agent registering a new shipment at
// the counter. The company, agency and agent codes feed the reference
// generator; when the company code is empty, agency numbering is disabled
// and the shipment is created without a reference. The session is optional:
// a shipment registered outside a cash session carries no session link and
// posts nothing to the ledger.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID          kernel.UUID
	companyCode         string
	agencyCode          string
	agentCode           string
	originAgencyID      kernel.UUID
	destinationAgencyID kernel.UUID
	sender              shipment.Party
	receiver            shipment.Party
	natureOfGoods       string
	declaredValue       kernel.Money
	insuranceRate       decimal.Decimal
	transportFee        kernel.Money
	paymentType         shipment.PaymentType
	sessionID           *kernel.UUID
	createdBy           kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	companyCode string,
	agencyCode string,
	agentCode string,
	originAgencyID kernel.UUID,
	destinationAgencyID kernel.UUID,
	sender shipment.Party,
	receiver shipment.Party,
	natureOfGoods string,
	declaredValue kernel.Money,
	insuranceRate decimal.Decimal,
	transportFee kernel.Money,
	paymentType shipment.PaymentType,
	sessionID *kernel.UUID,
	createdBy kernel.UUID,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOriginAgencyID(originAgencyID),
		cmd.setDestinationAgencyID(destinationAgencyID),
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
		cmd.setPaymentType(paymentType),
		cmd.setSessionID(sessionID),
		cmd.setCreatedBy(createdBy),
		cmd.setNumbering(companyCode, agencyCode, agentCode),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.natureOfGoods = natureOfGoods
	cmd.declaredValue = declaredValue
	cmd.insuranceRate = insuranceRate
	cmd.transportFee = transportFee

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the shipment to create.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CompanyCode returns the company's short code, empty when numbering is
// disabled.
func (c CreateShipmentCommand) CompanyCode() string {
	return c.companyCode
}

// AgencyCode returns the origin agency's short code.
func (c CreateShipmentCommand) AgencyCode() string {
	return c.agencyCode
}

// AgentCode returns the registering agent's counter code.
func (c CreateShipmentCommand) AgentCode() string {
	return c.agentCode
}

// OriginAgencyID returns the agency registering the shipment.
func (c CreateShipmentCommand) OriginAgencyID() kernel.UUID {
	return c.originAgencyID
}

// DestinationAgencyID returns the agency the shipment travels to.
func (c CreateShipmentCommand) DestinationAgencyID() kernel.UUID {
	return c.destinationAgencyID
}

// Sender returns the sending party.
func (c CreateShipmentCommand) Sender() shipment.Party {
	return c.sender
}

// Receiver returns the receiving party.
func (c CreateShipmentCommand) Receiver() shipment.Party {
	return c.receiver
}

// NatureOfGoods returns the free-text description of the contents.
func (c CreateShipmentCommand) NatureOfGoods() string {
	return c.natureOfGoods
}

// DeclaredValue returns the value declared by the sender.
func (c CreateShipmentCommand) DeclaredValue() kernel.Money {
	return c.declaredValue
}

// InsuranceRate returns the company's insurance rate.
func (c CreateShipmentCommand) InsuranceRate() decimal.Decimal {
	return c.insuranceRate
}

// TransportFee returns the quoted transport fee.
func (c CreateShipmentCommand) TransportFee() kernel.Money {
	return c.transportFee
}

// PaymentType returns where the fee is paid.
func (c CreateShipmentCommand) PaymentType() shipment.PaymentType {
	return c.paymentType
}

// SessionID returns the agent's cash session, nil when the shipment is
// registered outside one.
func (c CreateShipmentCommand) SessionID() *kernel.UUID {
	if c.sessionID == nil {
		return nil
	}

	id := *c.sessionID
	return &id
}

// CreatedBy returns the agent registering the shipment.
func (c CreateShipmentCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOriginAgencyID(originAgencyID kernel.UUID) error {
	if err := originAgencyID.Validate(); err != nil {
		return err
	}

	c.originAgencyID = originAgencyID
	return nil
}

func (c *CreateShipmentCommand) setDestinationAgencyID(destinationAgencyID kernel.UUID) error {
	if err := destinationAgencyID.Validate(); err != nil {
		return err
	}

	c.destinationAgencyID = destinationAgencyID
	return nil
}

func (c *CreateShipmentCommand) setSender(sender shipment.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setReceiver(receiver shipment.Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	c.receiver = receiver
	return nil
}

func (c *CreateShipmentCommand) setPaymentType(paymentType shipment.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}

func (c *CreateShipmentCommand) setSessionID(sessionID *kernel.UUID) error {
	if sessionID == nil {
		return nil
	}

	if err := sessionID.Validate(); err != nil {
		return err
	}

	id := *sessionID
	c.sessionID = &id
	return nil
}

func (c *CreateShipmentCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}

func (c *CreateShipmentCommand) setNumbering(companyCode, agencyCode, agentCode string) error {
	if companyCode != "" && agencyCode == "" {
		return errs.NewValueIsRequiredError("agencyCode")
	}
	if companyCode != "" && agentCode == "" {
		return errs.NewValueIsRequiredError("agentCode")
	}

	c.companyCode = companyCode
	c.agencyCode = agencyCode
	c.agentCode = agentCode
	return nil
}
