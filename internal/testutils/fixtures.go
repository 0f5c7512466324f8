package testutils

import (
	"github.com/KirkDiggler/cp2020-sheet/internal/domain/hitlocation"
	"github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs"
)

// CreateTestActor creates an actor with the default hit location table
func CreateTestActor(name string) *hitlocation.Actor {
	actor, err := hitlocation.NewActor(name, hitlocation.DefaultHitLocations())
	if err != nil {
		panic(err)
	}
	return actor
}

// CreateArmoredActor creates an actor with stopping power on every area
func CreateArmoredActor(name string, sp int) *hitlocation.Actor {
	table := hitlocation.DefaultHitLocations()
	for _, loc := range table {
		loc.StoppingPower = sp
	}

	actor, err := hitlocation.NewActor(name, table)
	if err != nil {
		panic(err)
	}
	return actor
}

// CreateInvertedActor creates an actor whose Head sits on face 10 and lLeg
// on face 1, for tests that must not depend on the default layout
func CreateInvertedActor(name string) *hitlocation.Actor {
	table := hitlocation.HitLocationTable{
		hitlocation.AreaHead:     {Faces: []int{10}},
		hitlocation.AreaTorso:    {Faces: []int{7, 9}},
		hitlocation.AreaRightArm: {Faces: []int{6}},
		hitlocation.AreaLeftArm:  {Faces: []int{5}},
		hitlocation.AreaRightLeg: {Faces: []int{3, 4}},
		hitlocation.AreaLeftLeg:  {Faces: []int{1, 2}},
	}

	actor, err := hitlocation.NewActor(name, table)
	if err != nil {
		panic(err)
	}
	return actor
}

// CreateTestSkill creates a skill document
func CreateTestSkill(id, name, stat string) *packs.Document {
	return &packs.Document{
		ID:   id,
		Name: name,
		Type: "skill",
		System: map[string]any{
			"stat":         stat,
			"level":        float64(0),
			"isChipped":    false,
			"ipMultiplier": float64(1),
		},
	}
}
