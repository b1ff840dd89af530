package perf

// Budget scales a baseline particle count down for weaker tiers. Baselines in
// the effect managers are authored for TierHigh.
func Budget(tier Tier, baseline int) int {
	switch tier {
	case TierLow:
		return baseline / 4
	case TierMedium:
		return baseline / 2
	default:
		return baseline
	}
}

// Emissive reports whether the tier affords emissive shading on props.
func Emissive(tier Tier) bool {
	return tier >= TierMedium
}

// HyperEffects reports whether the tier affords the 4-D phase effects.
func HyperEffects(tier Tier) bool {
	return tier == TierHigh
}
