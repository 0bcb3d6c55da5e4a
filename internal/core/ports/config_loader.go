package ports

import "go.trai.ch/nupin/internal/core/domain"

// PlanLoader defines the interface for loading a pin plan.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type PlanLoader interface {
	// Load reads the plan at path and resolves its package patterns into pin requests.
	Load(path string) ([]domain.PinRequest, error)
}
