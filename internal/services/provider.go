package services

import (
	"time"

	"github.com/KirkDiggler/cp2020-sheet/internal/dice"
	"github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs"
	hitlocService "github.com/KirkDiggler/cp2020-sheet/internal/services/hitlocation"
	skillService "github.com/KirkDiggler/cp2020-sheet/internal/services/skills"
)

// Provider holds all service instances
type Provider struct {
	HitLocationService hitlocService.Service
	SkillService       skillService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Roller         dice.Roller      // Optional - random roller if nil
	PackRepository packs.Repository // Optional - in-memory if nil
	SkillCacheTTL  time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	packRepo := cfg.PackRepository
	if packRepo == nil {
		packRepo = packs.NewInMemoryRepository()
	}

	hitLocations := hitlocService.NewService(&hitlocService.ServiceConfig{
		Roller: cfg.Roller,
	})

	skillSvc := skillService.NewService(&skillService.ServiceConfig{
		Repository: packRepo,
		CacheTTL:   cfg.SkillCacheTTL,
	})

	return &Provider{
		HitLocationService: hitLocations,
		SkillService:       skillSvc,
	}
}
