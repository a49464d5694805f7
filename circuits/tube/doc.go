// SPDX-License-Identifier: EPL-2.0

// Package tube implements the reference circuit: a tube-style
// saturation stage with naive oversampling.
//
// The signal path per output sample is fixed: input gain, asymmetric
// soft-knee saturation around a threshold, makeup gain, then a 50/50
// blend with the previous blended value (a one-pole smoothing filter
// whose state persists across buffers).  The inner loop runs once per
// oversampling sub-step and the final blend is divided by the
// oversampling factor.
//
// Three controls are exposed, all normalized to [0.0, 1.0]:
//
//	"Gain"        input gain, remapped to 0.5 .. 10.0
//	"Distortion"  saturation threshold, remapped to 0.1 .. 1.0
//	"Volume"      makeup gain, used as-is
//
// The threshold remap never reaches zero, which keeps the saturation
// transfer function defined for every control setting.
package tube
