// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample-conversion helpers shared by the
// format packages.
package utils

// Float32ToInt16 converts a normalized float sample to 16-bit PCM.
// Input outside [-1.0, 1.0] is clamped first.  The scale is 32767 on
// both sides so a full-scale positive sample cannot overflow.
func Float32ToInt16(sample float32) int16 {
	switch {
	case sample > 1.0:
		return 32767
	case sample < -1.0:
		return -32767
	default:
		return int16(sample * 32767.0)
	}
}

// MaxSampleValue returns the normalization divisor for integer PCM of
// the given bit depth.  Unknown depths fall back to 16-bit.
func MaxSampleValue(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
