package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import "context"

// Roller evaluates dice for the rest of the sheet.
// Injected everywhere randomness is needed so tests can use predetermined rolls.
type Roller interface {
	// Roll rolls count dice with the given sides and adds bonus
	Roll(ctx context.Context, count, sides, bonus int) (*RollResult, error)

	// Evaluate parses and rolls an expression such as "1d10" or the literal "7"
	Evaluate(ctx context.Context, expr string) (*RollResult, error)
}
