package window

// DeltaTime measures the time since the previous call and stores it for the
// cursor offset computation. Call it exactly once per frame: every call moves
// the baseline.
func (s *State) DeltaTime() float32 {
	now := s.native.Time()
	if !s.started {
		s.started = true
		s.lastTime = now
		s.deltaTime = firstFrameDelta
		return s.deltaTime
	}

	dt := float32(now - s.lastTime)
	s.lastTime = now
	if dt <= 0 {
		dt = firstFrameDelta
	}
	s.deltaTime = dt
	return s.deltaTime
}

// LastDeltaTime returns the value computed by the most recent DeltaTime call.
func (s *State) LastDeltaTime() float32 {
	return s.deltaTime
}

// SwapBuffers presents the frame and updates the FPS counter once per
// elapsed second.
func (s *State) SwapBuffers() {
	s.native.SwapBuffers()

	s.countFrames++
	now := s.native.Time()
	if now-s.lastFrameTime >= 1.0 {
		s.fps = s.countFrames
		s.lastFrameTime = now
		s.countFrames = 0
	}
}

// FPS returns the frame count of the last completed second.
func (s *State) FPS() int {
	return s.fps
}
