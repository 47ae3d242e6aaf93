package config

// SpeedPreset is a named speed multiplier cycled from the keyboard
type SpeedPreset struct {
	Label      string
	Multiplier float64
}

// SpeedPresets in cycle order
// Slow rounds to one sub-step per frame, same as Normal
var SpeedPresets = []SpeedPreset{
	{Label: "Slow", Multiplier: 0.3},
	{Label: "Normal", Multiplier: 1},
	{Label: "Fast", Multiplier: 3},
	{Label: "Ludicrous", Multiplier: 8},
}

// NextSpeed returns the preset after the one matching current
// Unknown multipliers restart the cycle at Normal
func NextSpeed(current float64) SpeedPreset {
	for i, p := range SpeedPresets {
		if p.Multiplier == current {
			return SpeedPresets[(i+1)%len(SpeedPresets)]
		}
	}
	return SpeedPresets[1]
}

// SpeedLabel names a multiplier, "x<n>" when it matches no preset
func SpeedLabel(mult float64) string {
	for _, p := range SpeedPresets {
		if p.Multiplier == mult {
			return p.Label
		}
	}
	return formatMultiplier(mult)
}
