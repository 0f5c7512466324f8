package hitlocation

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/cp2020-sheet/internal/dice"
	"github.com/KirkDiggler/cp2020-sheet/internal/domain/hitlocation"
	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

// Service resolves where an attack lands
type Service interface {
	// ResolveHitLocation rolls 1d10 against the area lookup, or when
	// targetArea is set, evaluates that area's first face as a fixed roll.
	// target may be nil to use the default tables.
	ResolveHitLocation(ctx context.Context, target *hitlocation.Actor, targetArea string) (*Result, error)
}

// Result carries the roll that decided the hit and the area struck
type Result struct {
	Roll    *dice.RollResult
	AreaHit string
}

// Aimed reports whether the result came from a called shot
func (r *Result) Aimed() bool {
	return r.Roll != nil && r.Roll.Count == 0
}

type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Optional - a random roller is used if nil
}

// NewService creates a new hit location service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{}

	if cfg != nil && cfg.Roller != nil {
		svc.roller = cfg.Roller
	} else {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

// ResolveHitLocation implements Service
func (s *service) ResolveHitLocation(ctx context.Context, target *hitlocation.Actor, targetArea string) (*Result, error) {
	if targetArea != "" {
		return s.resolveAimed(ctx, target, targetArea)
	}

	lookup := hitlocation.DefaultAreaLookup()
	if target != nil && len(target.HitLocLookup) > 0 {
		lookup = target.HitLocLookup
	}

	roll, err := s.roller.Evaluate(ctx, hitlocation.DieExpression)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to roll hit location")
	}

	area, ok := lookup[roll.Total]
	if !ok {
		return nil, apperr.UnknownFace(roll.Total)
	}

	return &Result{
		Roll:    roll,
		AreaHit: area,
	}, nil
}

func (s *service) resolveAimed(ctx context.Context, target *hitlocation.Actor, targetArea string) (*Result, error) {
	table := hitlocation.DefaultHitLocations()
	if target != nil && target.HitLocations != nil {
		table = target.HitLocations
	}

	location, ok := table[targetArea]
	if !ok {
		return nil, apperr.UnknownArea(targetArea)
	}

	face, ok := location.FirstFace()
	if !ok {
		return nil, apperr.InvalidArgumentf("hit location %q has no faces", targetArea).
			WithMeta("area", targetArea)
	}

	roll, err := s.roller.Evaluate(ctx, strconv.Itoa(face))
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to roll aimed shot at %s", targetArea)
	}

	return &Result{
		Roll:    roll,
		AreaHit: targetArea,
	}, nil
}
