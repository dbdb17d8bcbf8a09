package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered       uint64 `json:"users_registered"`
	RegistrationsRejected uint64 `json:"registrations_rejected"`
	LoginsSucceeded       uint64 `json:"logins_succeeded"`
	LoginsFailed          uint64 `json:"logins_failed"`
	FavoritesAdded        uint64 `json:"favorites_added"`
	FavoritesRemoved      uint64 `json:"favorites_removed"`
	WeatherSuccesses      uint64 `json:"weather_successes"`
	WeatherErrors         uint64 `json:"weather_errors"`
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered       uint64
	registrationsRejected uint64
	loginsSucceeded       uint64
	loginsFailed          uint64
	favoritesAdded        uint64
	favoritesRemoved      uint64
	weatherSuccesses      uint64
	weatherErrors         uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:       atomic.LoadUint64(&m.usersRegistered),
		RegistrationsRejected: atomic.LoadUint64(&m.registrationsRejected),
		LoginsSucceeded:       atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:          atomic.LoadUint64(&m.loginsFailed),
		FavoritesAdded:        atomic.LoadUint64(&m.favoritesAdded),
		FavoritesRemoved:      atomic.LoadUint64(&m.favoritesRemoved),
		WeatherSuccesses:      atomic.LoadUint64(&m.weatherSuccesses),
		WeatherErrors:         atomic.LoadUint64(&m.weatherErrors),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncRegistrationRejected increments the rejected registration counter.
func (m *InMemoryRecorder) IncRegistrationRejected() {
	atomic.AddUint64(&m.registrationsRejected, 1)
}

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncFavoriteAdded increments the favorites-added counter.
func (m *InMemoryRecorder) IncFavoriteAdded() {
	atomic.AddUint64(&m.favoritesAdded, 1)
}

// IncFavoriteRemoved increments the favorites-removed counter.
func (m *InMemoryRecorder) IncFavoriteRemoved() {
	atomic.AddUint64(&m.favoritesRemoved, 1)
}

// IncWeatherRequest increments the weather proxy counter for the outcome.
func (m *InMemoryRecorder) IncWeatherRequest(status string) {
	if status == "success" {
		atomic.AddUint64(&m.weatherSuccesses, 1)
		return
	}
	atomic.AddUint64(&m.weatherErrors, 1)
}
