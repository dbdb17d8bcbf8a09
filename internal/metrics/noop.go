package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncRegistrationRejected is a no-op.
func (n *NoopRecorder) IncRegistrationRejected() {}

// IncLoginSucceeded is a no-op.
func (n *NoopRecorder) IncLoginSucceeded() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}

// IncFavoriteAdded is a no-op.
func (n *NoopRecorder) IncFavoriteAdded() {}

// IncFavoriteRemoved is a no-op.
func (n *NoopRecorder) IncFavoriteRemoved() {}

// IncWeatherRequest is a no-op.
func (n *NoopRecorder) IncWeatherRequest(status string) {}
