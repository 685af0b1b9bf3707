package devserver

import (
	"fmt"

	"logistica/pkg/metadata"
	"logistica/pkg/models"
	"logistica/pkg/roles"
	"logistica/pkg/security"
)

const (
	SeedAdminEmail    = "admin@logistica.dev"
	SeedAdminPassword = "admin123"
)

// Seed fills an empty store with demo branches, products, accounts and
// movements.
func Seed(s *MemoryStore) error {
	s.mu.Lock()
	s.sites = []Site{
		{Branch: models.Branch{ID: "1", Name: "São Paulo"}, Latitude: -23.5505, Longitude: -46.6333},
		{Branch: models.Branch{ID: "2", Name: "Campinas"}, Latitude: -22.9099, Longitude: -47.0626},
		{Branch: models.Branch{ID: "3", Name: "Curitiba"}, Latitude: -25.4284, Longitude: -49.2733},
	}
	s.products = []models.Product{
		{ID: "1", Name: "Caixa", ProductName: "Caixa de papelão", Branch: "São Paulo", Quantity: 120, Location: "Galpão A", Latitude: -23.5505, Longitude: -46.6333},
		{ID: "2", Name: "Palete", ProductName: "Palete PBR", Branch: "Campinas", Quantity: 40, Location: "Pátio", Latitude: -22.9099, Longitude: -47.0626},
		{ID: "3", Name: "Fita", ProductName: "Fita adesiva", Branch: "Curitiba", Quantity: 300, Location: "Estante 4", Latitude: -25.4284, Longitude: -49.2733},
	}
	s.mu.Unlock()

	accounts := []struct {
		req    models.RegisterUserRequest
		active bool
	}{
		{models.RegisterUserRequest{Profile: roles.Admin.String(), Name: "Administrador", Email: SeedAdminEmail, Password: SeedAdminPassword}, true},
		{models.RegisterUserRequest{Profile: roles.Driver.String(), Name: "João Motorista", Email: "joao@logistica.dev", Password: "motorista123"}, true},
		{models.RegisterUserRequest{Profile: roles.Operator.String(), Name: "Bia Operadora", Email: "bia@logistica.dev", Password: "operador123"}, false},
	}
	for _, a := range accounts {
		hash, err := security.HashPassword(a.req.Password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		user, err := s.PersistUser(a.req, hash)
		if err != nil {
			return fmt.Errorf("seed account %s: %w", a.req.Email, err)
		}
		if !a.active {
			if _, err := s.ToggleStatus(user.ID); err != nil {
				return err
			}
		}
	}

	if _, err := s.PersistMovement(newMovement(s.sites[0], s.sites[1], s.products[0], models.QuantityFromInt(10), "João Motorista")); err != nil {
		return err
	}
	inTransit, err := s.PersistMovement(newMovement(s.sites[1], s.sites[2], s.products[1], models.QuantityFromInt(4), "João Motorista"))
	if err != nil {
		return err
	}
	_, err = s.TransitionMovement(inTransit.ID, metadata.TransitionStart, Evidence{
		Transition: metadata.TransitionStart,
		FileName:   "seed.jpg",
	})
	return err
}

func newMovement(origin, destination Site, product models.Product, quantity models.Quantity, motorista string) models.Movement {
	return models.Movement{
		OriginBranchID:      origin.ID,
		DestinationBranchID: destination.ID,
		ProductID:           product.ID,
		Quantity:            quantity,
		Motorista:           motorista,
		Produto:             models.MovementProduct{Nome: product.Name, Imagem: product.ImageURL},
		Origem:              models.Place{Nome: origin.Name, Latitude: origin.Latitude, Longitude: origin.Longitude},
		Destino:             models.Place{Nome: destination.Name, Latitude: destination.Latitude, Longitude: destination.Longitude},
	}
}
