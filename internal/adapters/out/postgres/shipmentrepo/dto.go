// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Money columns are stored as numeric and carried
// as decimals end to end; binary floats never touch an amount.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Statuses are stored as their string names so the rows stay
// readable in psql and the enum can be reordered without a migration.
type ShipmentDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference               string    `gorm:"index"`
	OriginAgencyID          uuid.UUID `gorm:"type:uuid;index"`
	DestinationAgencyID     uuid.UUID `gorm:"type:uuid;index"`
	SenderName              string
	SenderPhone             string
	ReceiverName            string
	ReceiverPhone           string
	NatureOfGoods           string
	DeclaredValue           decimal.Decimal `gorm:"type:numeric"`
	InsuranceRate           decimal.Decimal `gorm:"type:numeric"`
	InsuranceAmount         decimal.Decimal `gorm:"type:numeric"`
	TransportFee            decimal.Decimal `gorm:"type:numeric"`
	PaymentType             string
	PaymentStatus           string
	Status                  string     `gorm:"index"`
	CurrentLocationAgencyID uuid.UUID  `gorm:"type:uuid"`
	BatchID                 *uuid.UUID `gorm:"type:uuid;index"`
	SessionID               *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy               uuid.UUID  `gorm:"type:uuid"`
	CreatedAt               time.Time
	CollectedAtDestination  decimal.NullDecimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var batchID *uuid.UUID
	if id := aggregate.BatchID(); id != nil {
		raw := id.Bytes()
		batchID = &raw
	}

	var sessionID *uuid.UUID
	if id := aggregate.SessionID(); id != nil {
		raw := id.Bytes()
		sessionID = &raw
	}

	collected := decimal.NullDecimal{}
	if m := aggregate.CollectedAtDestination(); m != nil {
		collected = decimal.NullDecimal{Decimal: m.Decimal(), Valid: true}
	}

	return ShipmentDTO{
		ID:                      aggregate.ID().Bytes(),
		Reference:               aggregate.Reference(),
		OriginAgencyID:          aggregate.OriginAgencyID().Bytes(),
		DestinationAgencyID:     aggregate.DestinationAgencyID().Bytes(),
		SenderName:              aggregate.Sender().Name(),
		SenderPhone:             aggregate.Sender().Phone(),
		ReceiverName:            aggregate.Receiver().Name(),
		ReceiverPhone:           aggregate.Receiver().Phone(),
		NatureOfGoods:           aggregate.NatureOfGoods(),
		DeclaredValue:           aggregate.DeclaredValue().Decimal(),
		InsuranceRate:           aggregate.InsuranceRate(),
		InsuranceAmount:         aggregate.InsuranceAmount().Decimal(),
		TransportFee:            aggregate.TransportFee().Decimal(),
		PaymentType:             aggregate.PaymentType().String(),
		PaymentStatus:           aggregate.PaymentStatus().String(),
		Status:                  aggregate.Status().String(),
		CurrentLocationAgencyID: aggregate.CurrentLocationAgencyID().Bytes(),
		BatchID:                 batchID,
		SessionID:               sessionID,
		CreatedBy:               aggregate.CreatedBy().Bytes(),
		CreatedAt:               aggregate.CreatedAt(),
		CollectedAtDestination:  collected,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originAgencyID, err := kernel.UUIDFromBytes(dto.OriginAgencyID[:])
	if err != nil {
		return nil, err
	}

	destinationAgencyID, err := kernel.UUIDFromBytes(dto.DestinationAgencyID[:])
	if err != nil {
		return nil, err
	}

	currentLocationAgencyID, err := kernel.UUIDFromBytes(dto.CurrentLocationAgencyID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var batchID *kernel.UUID
	if dto.BatchID != nil {
		bID, bErr := kernel.UUIDFromBytes((*dto.BatchID)[:])
		if bErr != nil {
			return nil, bErr
		}
		batchID = &bID
	}

	var sessionID *kernel.UUID
	if dto.SessionID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.SessionID)[:])
		if sErr != nil {
			return nil, sErr
		}
		sessionID = &sID
	}

	sender, err := shipment.NewParty(dto.SenderName, dto.SenderPhone)
	if err != nil {
		return nil, err
	}

	receiver, err := shipment.NewParty(dto.ReceiverName, dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	paymentType, err := shipment.PaymentTypeFromString(dto.PaymentType)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := shipment.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var collected *kernel.Money
	if dto.CollectedAtDestination.Valid {
		m := kernel.NewMoneyFromDecimal(dto.CollectedAtDestination.Decimal)
		collected = &m
	}

	return shipment.RestoreShipment(
		id,
		dto.Reference,
		originAgencyID,
		destinationAgencyID,
		sender,
		receiver,
		dto.NatureOfGoods,
		kernel.NewMoneyFromDecimal(dto.DeclaredValue),
		dto.InsuranceRate,
		kernel.NewMoneyFromDecimal(dto.InsuranceAmount),
		kernel.NewMoneyFromDecimal(dto.TransportFee),
		paymentType,
		paymentStatus,
		status,
		currentLocationAgencyID,
		batchID,
		sessionID,
		createdBy,
		dto.CreatedAt,
		collected,
	)
}
