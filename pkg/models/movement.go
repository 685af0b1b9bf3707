package models

import (
	"encoding/json"

	"logistica/pkg/metadata"
)

type Movement struct {
	ID                  ID                      `json:"id"`
	Status              metadata.MovementStatus `json:"status"`
	OriginBranchID      ID                      `json:"originBranchId,omitempty"`
	DestinationBranchID ID                      `json:"destinationBranchId,omitempty"`
	ProductID           ID                      `json:"productId,omitempty"`
	Quantity            Quantity                `json:"quantidade"`
	Motorista           string                  `json:"motorista,omitempty"`
	Produto             MovementProduct         `json:"produto"`
	Origem              Place                   `json:"origem"`
	Destino             Place                   `json:"destino"`
}

// CreateMovementRequest is the payload of POST /movements. Quantity is sent as
// a bare JSON number.
type CreateMovementRequest struct {
	OriginBranchID      ID          `json:"originBranchId"`
	DestinationBranchID ID          `json:"destinationBranchId"`
	ProductID           ID          `json:"productId"`
	Quantity            json.Number `json:"quantity"`
	Motorista           string      `json:"motorista"`
}

type CreateMovementResponse struct {
	ID ID `json:"id"`
}
