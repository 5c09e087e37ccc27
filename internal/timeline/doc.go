// Package timeline is the shared, cooperatively stepped clock that drives
// every deferred behaviour in a mode.
//
// A [Timeline] is advanced exactly once per frame with [Timeline.Step]. It
// owns three things:
//
//   - the mode clock ([Timeline.Now]), in seconds since the mode started
//   - one-shot [Cue]s scheduled with [Timeline.Schedule], cancellable at any time
//   - [Motion]s that tween an [Output] through ramp and hold phases
//
// Applying a new motion to an output replaces the running one without calling
// its finish callback. Nothing here spawns goroutines; all callbacks run
// inside Step on the caller's goroutine.
package timeline
