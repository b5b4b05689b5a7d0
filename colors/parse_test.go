package colors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/plus3/platformer/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want colors.RGB
	}{
		{"(0.1, 0.2, 0.3)", colors.RGB{R: 0.1, G: 0.2, B: 0.3}},
		{"(1,0,0)", colors.RGB{R: 1, G: 0, B: 0}},
		{"  (  0.5 ,\t0.0 , 0.5  )  ", colors.RGB{R: 0.5, G: 0, B: 0.5}},
		{"rgb(0, 1, 0) trailing", colors.RGB{R: 0, G: 1, B: 0}},
		{"(1,2,3) (4,5,6)", colors.RGB{R: 1, G: 2, B: 3}},
		{"(-0.5, 1.5, 2)", colors.RGB{R: -0.5, G: 1.5, B: 2}},
		{"(1e-1, .5, 1.)", colors.RGB{R: 0.1, G: 0.5, B: 1}},
		{"(0x1p-1, 0, 0)", colors.RGB{R: 0.5, G: 0, B: 0}},
		{"(1_0, 0, 0)", colors.RGB{R: 10, G: 0, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := colors.Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		kind error
	}{
		{"0.1, 0.2, 0.3", colors.ErrMalformedDelimiters},
		{"(0.1, 0.2, 0.3", colors.ErrMalformedDelimiters},
		{"0.1, 0.2, 0.3)", colors.ErrMalformedDelimiters},
		{"", colors.ErrMalformedDelimiters},
		{"(0.1, 0.2)", colors.ErrWrongFieldCount},
		{"(0.1, 0.2, 0.3, 0.4)", colors.ErrWrongFieldCount},
		{"()", colors.ErrWrongFieldCount},
		{"(a, 0.2, 0.3)", colors.ErrInvalidNumber},
		{"(0.1, , 0.3)", colors.ErrInvalidNumber},
		{"(0.1, 0.2, 1e99)", colors.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.spec), func(t *testing.T) {
			_, err := colors.Parse(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var perr *colors.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.spec, perr.Spec)
		})
	}
}

func TestParseErrorNamesField(t *testing.T) {
	_, err := colors.Parse("(0.1, nope, 0.3)")

	var perr *colors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "nope", perr.Field)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, colors.Purple, colors.MustParse("(0.5, 0, 0.5)"))
	assert.Panics(t, func() { colors.MustParse("purple") })
}

func TestRGBNRGBA(t *testing.T) {
	c := colors.RGB{R: 1, G: 0.5, B: -3}.NRGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)

	assert.Equal(t, uint8(255), colors.RGB{R: 7}.NRGBA().R)
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "(0.5, 0, 0.5)", colors.Purple.String())
}
