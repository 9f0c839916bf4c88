// Package budget checks packaged build artifacts against a size budget and
// defines the boundary to the external packaging toolchain.
//
// The upper limit comes from a fixed table keyed by platform mode, Android
// target and JRuby version; the lower limit is 90% of it. An artifact below
// the lower limit means the budget is stale and should be tightened, not
// that the build regressed.
package budget
