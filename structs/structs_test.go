package structs_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/structs"
)

func TestRect(t *testing.T) {
	t.Parallel()

	r, err := structs.NewRect(30, 50)
	require.NoError(t, err)
	assert.Equal(t, 1500, r.Area())
	assert.True(t, r.CanHold(structs.Rect{Width: 10, Height: 40}))
	assert.False(t, r.CanHold(structs.Rect{Width: 60, Height: 45}))

	sq := structs.NewSquare(3)
	sq.Scale(2)
	assert.Equal(t, "6x6", sq.String())

	_, err = structs.NewRect(-1, 2)
	assert.Error(t, err)
}

func TestCoin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		coin  structs.Coin
		name  string
		cents int
		valid bool
	}{
		{structs.CoinUnknown, "unknown", 0, false},
		{structs.Penny, "penny", 1, true},
		{structs.Nickel, "nickel", 5, true},
		{structs.Dime, "dime", 10, true},
		{structs.Quarter, "quarter", 25, true},
		{structs.Coin(9), "Coin(9)", 0, false},
		{structs.Coin(-1), "Coin(-1)", 0, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.coin.String())
		assert.Equal(t, tc.cents, tc.coin.Cents(), tc.name)
		assert.Equal(t, tc.valid, tc.coin.Valid(), tc.name)
	}
}

func TestPermFlags(t *testing.T) {
	t.Parallel()

	p := structs.PermRead | structs.PermExec
	assert.True(t, p.Has(structs.PermRead))
	assert.False(t, p.Has(structs.PermWrite))
	assert.Equal(t, structs.Perm(5), p)
}

func TestVariants(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Pi, structs.Area(structs.Circle{R: 1}), 1e-9)
	assert.Equal(t, 4.0, structs.Area(structs.Square{Side: 2}))
	assert.Equal(t, 6.0, structs.Area(structs.Triangle{Base: 3, Height: 4}))

	assert.Equal(t, "quit", structs.Describe(structs.Quit{}))
	assert.Equal(t, "move to (3, -1)", structs.Describe(structs.Move{X: 3, Y: -1}))
	assert.Equal(t, `write "hi"`, structs.Describe(structs.Write{Text: "hi"}))
	assert.Equal(t, "color #ff8000", structs.Describe(structs.ChangeColor{R: 255, G: 128}))
}

func TestDogShadowsSound(t *testing.T) {
	t.Parallel()

	d := structs.Dog{Animal: structs.Animal{Name: "rex", Legs: 4}}
	assert.Equal(t, "woof", d.Sound())
	assert.Equal(t, "...", d.Animal.Sound())
	assert.Equal(t, "rex has 4 legs", d.Describe())
}

func TestRunOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	structs.Run(&buf)
	out := buf.String()

	assert.Contains(t, out, "30x50 area = 1500")
	assert.Contains(t, out, "NewSquare(3) scaled by 2: 6x6")
	assert.Contains(t, out, "method value=1500  method expression=36")
	assert.Contains(t, out, "quarter = 25 cents")
	assert.Contains(t, out, "flags 011: read=true write=true exec=false")
	assert.Contains(t, out, "Point{1,2} == Point{1,2}: true")
}
