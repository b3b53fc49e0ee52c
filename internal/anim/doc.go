// Package anim advances every trajectory of a session on one shared frame
// clock.
//
// A [Clock] moves through three phases:
//
//	Idle -> Running -> Finished
//
// Each [Clock.Tick] yields a [State] value holding, per optimizer, the
// reveal index min(frame, len-1), the path up to it and the current point.
// Trajectories shorter than the longest one stay frozen on their last
// point. [Run] drives a clock from a ticker for non-interactive playback.
package anim
