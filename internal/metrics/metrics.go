// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncUserRegistered()
	IncRegistrationRejected()
	IncLoginSucceeded()
	IncLoginFailed()

	// Favorites metrics
	IncFavoriteAdded()
	IncFavoriteRemoved()

	// Weather proxy metrics
	IncWeatherRequest(status string) // status: "success" or "error"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
