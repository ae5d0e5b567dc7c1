package market

// Store exposes dashboard data for HTTP handlers and the advisor prompt.
type Store interface {
	Rates() []Rate
	Alerts() []Alert
	Forecast() []Forecast
}

// MemoryStore implements Store with bundled read-only slices.
type MemoryStore struct {
	rates    []Rate
	alerts   []Alert
	forecast []Forecast
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied data.
func NewMemoryStore(rates []Rate, alerts []Alert, forecast []Forecast) *MemoryStore {
	return &MemoryStore{
		rates:    append([]Rate(nil), rates...),
		alerts:   append([]Alert(nil), alerts...),
		forecast: append([]Forecast(nil), forecast...),
	}
}

// Rates returns the current mandi quotes.
func (s *MemoryStore) Rates() []Rate {
	return append([]Rate(nil), s.rates...)
}

// Alerts returns active weather warnings.
func (s *MemoryStore) Alerts() []Alert {
	return append([]Alert(nil), s.alerts...)
}

// Forecast returns the 5-day outlook.
func (s *MemoryStore) Forecast() []Forecast {
	return append([]Forecast(nil), s.forecast...)
}
