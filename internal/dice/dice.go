package dice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

// maxDice caps the number of dice a single expression may roll
const maxDice = 100

// Expression is a parsed dice expression such as "1d10", "2d6+3" or "7".
// A fixed expression has Count == 0 and its value in Modifier.
type Expression struct {
	Raw      string
	Count    int
	Sides    int
	Modifier int
}

// IsFixed reports whether the expression always evaluates to Modifier
func (e Expression) IsFixed() bool {
	return e.Count == 0
}

// RollResult is the outcome of evaluating a dice expression
type RollResult struct {
	Expression string `json:"expression"`
	Total      int    `json:"total"`
	Rolls      []int  `json:"rolls"`
	Bonus      int    `json:"bonus"`
	Count      int    `json:"count"`
	Sides      int    `json:"sides"`
}

// RawTotal is the sum of the dice without the bonus
func (r *RollResult) RawTotal() int {
	return r.Total - r.Bonus
}

func (r *RollResult) String() string {
	if r.Count == 0 {
		return fmt.Sprintf("%s = %d", r.Expression, r.Total)
	}
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	if r.Bonus != 0 {
		return fmt.Sprintf("%s → %s %+d = %d", r.Expression, compact, r.Bonus, r.Total)
	}
	return fmt.Sprintf("%s → %s = %d", r.Expression, compact, r.Total)
}

// Parse parses "NdS", "NdS+B", "NdS-B", "dS" or an integer literal
func Parse(expr string) (Expression, error) {
	raw := strings.TrimSpace(expr)
	if raw == "" {
		return Expression{}, apperr.InvalidArgument("dice expression is required")
	}

	compact := strings.ToLower(strings.ReplaceAll(raw, " ", ""))

	if fixed, err := strconv.Atoi(compact); err == nil {
		return Expression{Raw: raw, Modifier: fixed}, nil
	}

	count, rest, found := strings.Cut(compact, "d")
	if !found {
		return Expression{}, apperr.InvalidArgumentf("invalid dice expression %q", raw)
	}

	e := Expression{Raw: raw, Count: 1}
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return Expression{}, apperr.InvalidArgumentf("invalid dice count in %q", raw)
		}
		e.Count = n
	}

	sides := rest
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		sides = rest[:i]
		bonus, err := strconv.Atoi(rest[i:])
		if err != nil {
			return Expression{}, apperr.InvalidArgumentf("invalid dice bonus in %q", raw)
		}
		e.Modifier = bonus
	}

	n, err := strconv.Atoi(sides)
	if err != nil {
		return Expression{}, apperr.InvalidArgumentf("invalid dice size in %q", raw)
	}
	e.Sides = n

	if err := validate(e.Count, e.Sides); err != nil {
		return Expression{}, err
	}

	return e, nil
}

// EvaluateWith parses expr and rolls it with r. Fixed expressions never
// reach the roller, so a predetermined roller keeps its queue untouched.
func EvaluateWith(ctx context.Context, r Roller, expr string) (*RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.IsFixed() {
		return &RollResult{
			Expression: e.Raw,
			Total:      e.Modifier,
			Rolls:      []int{},
			Bonus:      e.Modifier,
		}, nil
	}

	result, err := r.Roll(ctx, e.Count, e.Sides, e.Modifier)
	if err != nil {
		return nil, err
	}
	result.Expression = e.Raw

	return result, nil
}

func validate(count, sides int) error {
	if count < 1 {
		return apperr.InvalidArgument("invalid dice count")
	}
	if count > maxDice {
		return apperr.InvalidArgumentf("cannot roll more than %d dice", maxDice)
	}
	if sides < 1 {
		return apperr.InvalidArgument("invalid dice size")
	}
	return nil
}
