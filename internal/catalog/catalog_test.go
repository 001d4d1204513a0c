package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelsFor(t *testing.T) {
	tests := []struct {
		name      string
		brand     string
		wantEmpty bool
		contains  string
	}{
		{
			name:     "known brand",
			brand:    "Toyota",
			contains: "Corolla",
		},
		{
			name:     "brand with two models",
			brand:    "TOGG",
			contains: "T10X",
		},
		{
			name:      "unknown brand",
			brand:     "Yugo",
			wantEmpty: true,
		},
		{
			name:      "empty brand",
			brand:     "",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models := ModelsFor(tt.brand)
			require.NotNil(t, models)
			if tt.wantEmpty {
				assert.Empty(t, models)
				return
			}
			assert.Contains(t, models, tt.contains)
		})
	}
}

func TestModelsForReturnsCopy(t *testing.T) {
	models := ModelsFor("Honda")
	require.NotEmpty(t, models)

	models[0] = "mutated"
	assert.NotContains(t, ModelsFor("Honda"), "mutated")
}

func TestBrandsReturnsCopy(t *testing.T) {
	brands := Brands()
	require.NotEmpty(t, brands)

	brands[0] = "mutated"
	assert.NotContains(t, Brands(), "mutated")
}

func TestMembershipChecks(t *testing.T) {
	assert.True(t, IsBrand("BMW"))
	assert.False(t, IsBrand("bmw"))

	assert.True(t, IsColor("Siyah"))
	assert.False(t, IsColor("Magenta"))

	assert.True(t, IsEngineSize("1.6"))
	assert.True(t, IsEngineSize("Elektrikli"))
	assert.False(t, IsEngineSize("9.9"))

	assert.True(t, IsPower("150 HP"))
	assert.False(t, IsPower("151 HP"))

	assert.True(t, IsCondition(ConditionDamaged))
	assert.False(t, IsCondition("wrecked"))

	assert.True(t, IsCurrency("EUR"))
	assert.False(t, IsCurrency("JPY"))

	assert.True(t, IsDoorCount("4"))
	assert.False(t, IsDoorCount("6"))

	assert.True(t, IsFeature("ABS"))
	assert.False(t, IsFeature("Warp Drive"))
}
