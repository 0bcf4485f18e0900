// SPDX-License-Identifier: MIT

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the unexported softmax and percentile kernels to simmat_test ONLY,
//     enabling white-box verification without widening the production API.
//
// Notes:
//   - Standard *_test.go export bridge: compiled for tests of this package
//     only, invisible in production builds.

package simmat

// ExportedTripletChoiceProb exposes tripletChoiceProb for white-box tests.
var ExportedTripletChoiceProb = tripletChoiceProb

// ExportedPercentileOfScore exposes percentileOfScore for white-box tests.
var ExportedPercentileOfScore = percentileOfScore
