// Package app wires the car, its randomness source and the inspection
// checklist together and runs the pre-drive routine. It is decoupled from
// the CLI so tests can drive it with their own writers and coins.
package app
