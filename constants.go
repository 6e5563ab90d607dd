package tween

// Default curve parameters used by the package-level presets.
const (
	DefaultStrength = 3.0 // Exponent half for EaseIn/EaseOut (p^6)
	DefaultPasses   = 3   // Oscillation count for Elastic/Bounce
)

// Strength limits for EaseIn/EaseOut.
// Exponents above 12 flatten the curve into a near step function.
const (
	minStrength = 1.0
	maxStrength = 6.0
)

// Curve math constants
const (
	strengthFactor = 2.0 // exponent = strengthFactor * strength
	bounceMirror   = 2.0 // bounce reflects e > 1 to 2 - e
)

// Spec string format
const (
	paramSeparator = ":"
	paramBitSize   = 64
)

// Sampling limits
const (
	minSamples = 2 // a grid needs both endpoints
)
