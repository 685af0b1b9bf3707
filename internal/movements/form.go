package movements

import (
	"encoding/json"
	"strings"

	custom_error "logistica/pkg/errors"
	"logistica/pkg/models"

	"github.com/shopspring/decimal"
)

const (
	msgMissingFields   = "Por favor, preencha todos os campos."
	msgInvalidQuantity = "A quantidade deve ser um número válido maior que zero."
	msgMissingImage    = "Por favor, selecione uma imagem."
)

// Form is the movement registration input, as typed by the user.
type Form struct {
	OriginBranchID      string
	DestinationBranchID string
	ProductID           string
	Quantity            string
	Motorista           string
}

// Validate checks the form locally and builds the creation request.
func Validate(form Form) (models.CreateMovementRequest, error) {
	required := []struct {
		field string
		value string
	}{
		{"originBranchId", form.OriginBranchID},
		{"destinationBranchId", form.DestinationBranchID},
		{"productId", form.ProductID},
		{"quantity", form.Quantity},
		{"motorista", form.Motorista},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return models.CreateMovementRequest{}, custom_error.NewValidationError(r.field, msgMissingFields)
		}
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(form.Quantity))
	if err != nil || !quantity.IsPositive() {
		return models.CreateMovementRequest{}, custom_error.NewValidationError("quantity", msgInvalidQuantity)
	}

	return models.CreateMovementRequest{
		OriginBranchID:      models.ID(strings.TrimSpace(form.OriginBranchID)),
		DestinationBranchID: models.ID(strings.TrimSpace(form.DestinationBranchID)),
		ProductID:           models.ID(strings.TrimSpace(form.ProductID)),
		Quantity:            json.Number(quantity.String()),
		Motorista:           strings.TrimSpace(form.Motorista),
	}, nil
}
