package camera4d

import "time"

// Update runs one frame of the camera in its fixed order: input dispatch, then the
// animation step, then the upload. Dispatch and Tick share the same frame time so
// an animation started this frame begins at fraction 0.
//
// Parameters:
//   - cam: the camera owned by the frame loop
//   - dispatcher: the key dispatcher
//   - keys: this tick's keyboard snapshot
//   - now: the current monotonic frame time
//   - upload: called with the camera after the tick; reports whether anything was written
//
// Returns:
//   - bool: the result of upload
func Update(cam Camera, dispatcher *Dispatcher, keys KeyState, now time.Time, upload func(Camera) bool) bool {
	dispatcher.Dispatch(keys, cam, now)
	cam.Tick(now)
	return upload(cam)
}
