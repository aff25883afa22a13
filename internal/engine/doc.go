// Package engine simulates a car's engine and speed.
//
// A Controller holds two pieces of state: whether the engine is running and
// the current speed. Speed moves in steps of SpeedStep and is clamped to
// [MinSpeed, MaxSpeed], so it is always a multiple of SpeedStep. Changing the
// speed has no effect while the engine is off.
//
// The fuel and service checks are randomized through a coin.Flipper supplied
// at construction time.
package engine
