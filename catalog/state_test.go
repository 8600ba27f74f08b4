package catalog

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterState_Bounds(t *testing.T) {
	state := NewFilterState(fixtureCatalog())

	lower, upper := state.Bounds()
	assert.Equal(t, 250.0, lower)
	assert.Equal(t, 3000.0, upper)
	assert.Equal(t, lower, state.PriceLower)
	assert.Equal(t, upper, state.PriceUpper)
	assert.Equal(t, All, state.Category)
	assert.Equal(t, All, state.Gender)
	assert.Equal(t, DiscountAll, state.DiscountMode)
}

func TestNewFilterState_EmptyCatalog(t *testing.T) {
	state := NewFilterState(nil)
	assert.Equal(t, 0.0, state.PriceLower)
	assert.Equal(t, 0.0, state.PriceUpper)
}

func TestFilterState_HandlesPinToEachOther(t *testing.T) {
	state := NewFilterState(fixtureCatalog())

	state.SetUpper(1000)
	state.SetLower(1500)
	assert.Equal(t, 1000.0, state.PriceLower, "lower handle is pinned to the upper one")

	state.SetUpper(400)
	assert.Equal(t, 1000.0, state.PriceUpper, "upper handle is pinned to the lower one")

	state.SetLower(-10)
	assert.Equal(t, 250.0, state.PriceLower, "handles stay inside the slider range")
	state.SetUpper(1e9)
	assert.Equal(t, 3000.0, state.PriceUpper)

	state.SetLower(math.NaN())
	assert.Equal(t, 250.0, state.PriceLower)
}

func TestFilterState_ClampInvariantUnderRandomUpdates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	state := NewFilterState(fixtureCatalog())

	for i := 0; i < 5000; i++ {
		value := rng.Float64()*4000 - 500
		if rng.Intn(2) == 0 {
			state.SetLower(value)
		} else {
			state.SetUpper(value)
		}
		require.LessOrEqual(t, state.PriceLower, state.PriceUpper, "iteration %d", i)
	}
}

func TestFilterState_Reset(t *testing.T) {
	state := NewFilterState(fixtureCatalog())
	state.SetCategory("Hair")
	state.SetGender("Men")
	state.SetDiscountMode(DiscountWithout)
	state.SetLower(900)
	state.SetUpper(1200)

	state.Reset()

	assert.Equal(t, NewFilterState(fixtureCatalog()), state)
}

func TestParseDiscountMode(t *testing.T) {
	for input, want := range map[string]DiscountMode{
		"":              DiscountAll,
		"all":           DiscountAll,
		"with-discount": DiscountWith,
		"no-discount":   DiscountWithout,
	} {
		got, err := ParseDiscountMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseDiscountMode("half-off")
	assert.Error(t, err)
}
