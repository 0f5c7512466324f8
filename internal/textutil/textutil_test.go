package textutil_test

import (
	"testing"

	"github.com/KirkDiggler/cp2020-sheet/internal/textutil"
	"github.com/stretchr/testify/assert"
)

func TestProperCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "hELLO wORLD", want: "Hello World"},
		{in: "martial arts", want: "Martial Arts"},
		{in: "  double  spaced ", want: "  Double  Spaced "},
		{in: "'quoted word'", want: "'Quoted Word'"},
		{in: "3rd PARTY", want: "3rd Party"},
		{in: "wEAPON-sMITH", want: "Weapon-smith"},
		{in: "", want: ""},
		{in: "sÜD", want: "Süd"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, textutil.ProperCase(tt.in))
		})
	}
}

func TestReplaceIn(t *testing.T) {
	assert.Equal(t, "Roll 1d10 for location", textutil.ReplaceIn("Roll [VAR] for location", "1d10"))
	assert.Equal(t, "a b [VAR]", textutil.ReplaceIn("a [VAR] [VAR]", "b"))
	assert.Equal(t, "no token", textutil.ReplaceIn("no token", "x"))
}

func TestSanitizeSkillName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Awareness/Notice", want: "AwarenessNotice"},
		{in: "Martial Art: Karate", want: "MartialArtKarate"},
		{in: "Pilot (Gyro)", want: "PilotGyro"},
		{in: "Education & Gen.Know", want: "EducationGenKnow"},
		{in: "Внимательность / Замечать", want: "ВнимательностьЗамечать"},
		{in: "Ёмкость", want: "мкость"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, textutil.SanitizeSkillName(tt.in))
		})
	}
}
