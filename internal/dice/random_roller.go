package dice

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with math/rand
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed, for reproducible sequences
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(ctx context.Context, count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rolls := make([]int, count)
	rawTotal := 0

	r.mu.Lock()
	for i := range rolls {
		rolls[i] = r.random.Intn(sides) + 1
		rawTotal += rolls[i]
	}
	r.mu.Unlock()

	return &RollResult{
		Total: rawTotal + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// Evaluate implements Roller.Evaluate
func (r *randomRoller) Evaluate(ctx context.Context, expr string) (*RollResult, error) {
	return EvaluateWith(ctx, r, expr)
}
