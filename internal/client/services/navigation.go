package services

// Route is a navigation target of the client.
type Route string

const (
	RouteLogin     Route = "/login"
	RouteSignup    Route = "/signup"
	RouteDashboard Route = "/dashboard"
)

// Navigator moves the UI to a route.
type Navigator interface {
	Navigate(to Route)
}

// Notifier shows short user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
