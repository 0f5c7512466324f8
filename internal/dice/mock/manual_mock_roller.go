package mockdice

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/cp2020-sheet/internal/dice"
)

// ManualMockRoller implements dice.Roller with predetermined die faces
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a roller with an empty queue
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues one more face
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Remaining is the number of queued faces not yet used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(ctx context.Context, count, sides, bonus int) (*dice.RollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total: rawTotal + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// Evaluate implements dice.Roller.Evaluate
func (m *ManualMockRoller) Evaluate(ctx context.Context, expr string) (*dice.RollResult, error) {
	return dice.EvaluateWith(ctx, m, expr)
}
