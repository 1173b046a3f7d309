// Package clock lets business code read the current time through an
// interface. Production wiring uses TimeClocker; tests use Frozen.
package clock
