package handlers

// HandlerBundle aggregates all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Students *StudentHandler
	Artisans *ArtisanHandler
	Bookings *BookingHandler
	Reviews  *ReviewHandler
	Admin    *AdminHandler
}
