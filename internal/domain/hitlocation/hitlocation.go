package hitlocation

import (
	"slices"
	"sort"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

// Die is the die rolled for random hit locations
const (
	DieSides      = 10
	DieExpression = "1d10"
)

// Area names used by the default table
const (
	AreaHead     = "Head"
	AreaTorso    = "Torso"
	AreaRightArm = "rArm"
	AreaLeftArm  = "lArm"
	AreaRightLeg = "rLeg"
	AreaLeftLeg  = "lLeg"
)

// Location is one row of a hit location table.
// Faces is a single face, an inclusive range [low, high], or a set of
// three or more faces.
type Location struct {
	Faces         []int `json:"location"`
	StoppingPower int   `json:"stoppingPower"`
	Ablation      int   `json:"ablation"`
}

// FirstFace is the face used when a shot is aimed at this location
func (l *Location) FirstFace() (int, bool) {
	if l == nil || len(l.Faces) == 0 {
		return 0, false
	}
	return l.Faces[0], true
}

// Span returns every face covered by the location. Two faces are an
// inclusive range; one or three and more are a set.
func (l *Location) Span() []int {
	if l == nil || len(l.Faces) == 0 {
		return nil
	}
	if len(l.Faces) != 2 {
		out := append([]int(nil), l.Faces...)
		sort.Ints(out)
		return slices.Compact(out)
	}

	low, high := l.Faces[0], l.Faces[1]
	if high < low {
		low, high = high, low
	}
	out := make([]int, 0, high-low+1)
	for face := low; face <= high; face++ {
		out = append(out, face)
	}
	return out
}

// HitLocationTable maps an area name to its location row
type HitLocationTable map[string]*Location

// AreaLookup maps a rolled face to an area name
type AreaLookup map[int]string

// Actor supplies its own tables. Nil fields fall back to the defaults.
type Actor struct {
	Name         string
	HitLocations HitLocationTable
	HitLocLookup AreaLookup
}

// NewActor creates an actor whose lookup is derived from table. The table
// must cover every face of the die exactly once.
func NewActor(name string, table HitLocationTable) (*Actor, error) {
	if err := table.Validate(DieSides); err != nil {
		return nil, err
	}
	lookup, err := BuildAreaLookup(table)
	if err != nil {
		return nil, err
	}
	return &Actor{
		Name:         name,
		HitLocations: table,
		HitLocLookup: lookup,
	}, nil
}

// DefaultHitLocations returns a fresh copy of the standard table
func DefaultHitLocations() HitLocationTable {
	return HitLocationTable{
		AreaHead:     {Faces: []int{1}},
		AreaTorso:    {Faces: []int{2, 4}},
		AreaRightArm: {Faces: []int{5}},
		AreaLeftArm:  {Faces: []int{6}},
		AreaRightLeg: {Faces: []int{7, 8}},
		AreaLeftLeg:  {Faces: []int{9, 10}},
	}
}

// DefaultAreaLookup returns a fresh copy of the standard face lookup
func DefaultAreaLookup() AreaLookup {
	return AreaLookup{
		1:  AreaHead,
		2:  AreaTorso,
		3:  AreaTorso,
		4:  AreaTorso,
		5:  AreaRightArm,
		6:  AreaLeftArm,
		7:  AreaRightLeg,
		8:  AreaRightLeg,
		9:  AreaLeftLeg,
		10: AreaLeftLeg,
	}
}

// BuildAreaLookup inverts table. Two areas claiming the same face is a
// validation error.
func BuildAreaLookup(table HitLocationTable) (AreaLookup, error) {
	lookup := make(AreaLookup)
	for _, area := range table.Areas() {
		for _, face := range table[area].Span() {
			if other, taken := lookup[face]; taken {
				return nil, apperr.Validationf("face %d claimed by both %s and %s", face, other, area).
					WithMeta("face", face)
			}
			lookup[face] = area
		}
	}
	return lookup, nil
}

// Validate checks that every face 1..sides maps to exactly one area
func (t HitLocationTable) Validate(sides int) error {
	lookup, err := BuildAreaLookup(t)
	if err != nil {
		return err
	}
	for face := 1; face <= sides; face++ {
		if _, ok := lookup[face]; !ok {
			return apperr.Validationf("face %d has no hit location", face).
				WithMeta("face", face)
		}
	}
	for face := range lookup {
		if face < 1 || face > sides {
			return apperr.Validationf("face %d is outside d%d", face, sides).
				WithMeta("face", face)
		}
	}
	return nil
}

// Areas returns the area names ordered by their first face, then name
func (t HitLocationTable) Areas() []string {
	areas := make([]string, 0, len(t))
	for area := range t {
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool {
		fi, _ := t[areas[i]].FirstFace()
		fj, _ := t[areas[j]].FirstFace()
		if fi != fj {
			return fi < fj
		}
		return areas[i] < areas[j]
	})
	return areas
}
