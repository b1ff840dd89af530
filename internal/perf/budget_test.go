package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetMonotonic(t *testing.T) {
	const baseline = 2000
	low := Budget(TierLow, baseline)
	medium := Budget(TierMedium, baseline)
	high := Budget(TierHigh, baseline)

	assert.LessOrEqual(t, low, medium)
	assert.LessOrEqual(t, medium, high)
	assert.Equal(t, baseline, high)
	assert.Positive(t, low)
}

func TestFeatureGates(t *testing.T) {
	assert.False(t, Emissive(TierLow))
	assert.True(t, Emissive(TierMedium))
	assert.False(t, HyperEffects(TierMedium))
	assert.True(t, HyperEffects(TierHigh))
}

func TestClassify(t *testing.T) {
	discrete := AdapterInfo{Name: "NVIDIA GeForce RTX 3060", DeviceType: "DiscreteGPU"}
	assert.Equal(t, TierHigh, classify(discrete, 4))

	integrated := AdapterInfo{Name: "Intel UHD Graphics", DeviceType: "IntegratedGPU"}
	assert.Equal(t, TierMedium, classify(integrated, 4))
	assert.Equal(t, TierHigh, classify(integrated, 12))

	soft := AdapterInfo{Name: "llvmpipe (LLVM 15.0.7)", DeviceType: "CPU"}
	assert.Equal(t, TierLow, classify(soft, 4))
	assert.Equal(t, TierMedium, classify(soft, 16))

	assert.Equal(t, TierLow, classify(AdapterInfo{}, 2))
}
