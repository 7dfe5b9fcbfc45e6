package lexicon

import (
	"testing"

	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", "", ""},
		{"Lower Case", "SCANIA", "scania"},
		{"Umlaut Table", "Mercedes-Bänz", "mercedes banz"},
		{"Caron Table", "Škoda", "skoda"},
		{"Other Accents", "Renault Trucks Élan", "renault trucks elan"},
		{"Punctuation", "volvo, scania & man!", "volvo scania man"},
		{"Whitespace Runs", "  daf \t  iveco  ", "daf iveco"},
		{"Eszett", "Straße", "strasse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, s := range []string{"Mercedes-Benz", "  Ä.B.C ", "cm³"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"  42 ", 42, false},
		{"-1", -1, false},
		{"three", 3, false},
		{"Twenty", 20, false},
		{"zero", 0, false},
		{"twenty-one", 0, true},
		{"3.5", 0, true},
		{"many", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	got, err := ParseFloat(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = ParseFloat("eleven")
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)

	for _, bad := range []string{"NaN", "inf", "heavy"} {
		_, err = ParseFloat(bad)
		assert.ErrorIs(t, err, domain.ErrNotANumber, bad)
	}
}

func TestParseNonEmpty(t *testing.T) {
	got, err := ParseNonEmpty("  FH16 ")
	require.NoError(t, err)
	assert.Equal(t, "FH16", got)

	_, err = ParseNonEmpty(" \t ")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		unit    Unit
		want    float64
		wantErr bool
	}{
		{"Cubic Centimetres", "5000 cc", EngineVolume, 5.0, false},
		{"Cubic Centimetres Symbol", "12800cm³", EngineVolume, 12.8, false},
		{"Litres Short", "5 l", EngineVolume, 5.0, false},
		{"Litres Long", "13 litres", EngineVolume, 13.0, false},
		{"Upper Case Unit", "5000 CC", EngineVolume, 5.0, false},
		{"No Unit", "13", EngineVolume, 13.0, false},
		{"Number Word", "twelve liters", EngineVolume, 12.0, false},
		{"Tons", "20 tons", Tons, 20.0, false},
		{"Ton Letter", "7.5t", Tons, 7.5, false},
		{"Word Ending In Unit Letter", "eight", Tons, 8.0, false},
		{"Unit Only", "cc", EngineVolume, 0, true},
		{"Garbage", "big", Tons, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.input, tt.unit)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseQuantity_AdHocUnit(t *testing.T) {
	unit := Unit{Aliases: []string{"l"}, Alternate: []string{"cc", "cm³"}, Factor: 0.001}

	got, err := ParseQuantity("5000 cc", unit)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-9)

	got, err = ParseQuantity("5 l", unit)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-9)
}

func TestYesNo(t *testing.T) {
	for _, s := range []string{"yes", "Y", "yep", "Sure!", " ja "} {
		assert.True(t, IsYes(s), s)
		assert.False(t, IsNo(s), s)
	}
	for _, s := range []string{"no", "N", "none", "Nope.", "no more", "zero"} {
		assert.True(t, IsNo(s), s)
		assert.False(t, IsYes(s), s)
	}
	for _, s := range []string{"maybe", "", "yes please"} {
		assert.False(t, IsYes(s), s)
		assert.False(t, IsNo(s), s)
	}
}
