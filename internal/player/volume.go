package player

import "math"

const (
	// MinVolume and MaxVolume bound the percent scale exposed to the UI.
	MinVolume = 0
	MaxVolume = 100

	// DefaultVolume is used until a saved preference is applied.
	DefaultVolume = 80

	// volumeBase is the exponent base fed to effects.Volume.
	volumeBase = 2

	// minVolumeGain is the gain at 1 percent; 0 percent switches to Silent.
	minVolumeGain = -10.0

	// volumeCurve shapes the percent-to-gain mapping so the lower half of the
	// slider is not perceptually useless.
	volumeCurve = 0.5
)

// percentToGain maps a 0-100 volume percent to the exponential gain used by
// effects.Volume. 100 percent is unity gain (0), lower values fall off along
// a square-root curve down to minVolumeGain.
func percentToGain(percent int) float64 {
	if percent <= MinVolume {
		return minVolumeGain
	}
	if percent >= MaxVolume {
		return 0
	}
	normalized := float64(percent) / float64(MaxVolume)
	return (1 - math.Pow(normalized, volumeCurve)) * minVolumeGain
}

func clampVolume(percent int) int {
	if percent < MinVolume {
		return MinVolume
	}
	if percent > MaxVolume {
		return MaxVolume
	}
	return percent
}
