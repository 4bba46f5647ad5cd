package rest

const (
	RouteHome = "/"

	RouteUsers     = "/users"
	RouteUser      = RouteUsers + "/:user_id"
	RouteBirthdays = "/birthdays"

	// search
	RouteSearch          = "/search"
	RouteSearchEmail     = RouteSearch + "/email"
	RouteSearchFirstName = RouteSearch + "/first_name"
	RouteSearchLastName  = RouteSearch + "/last_name"

	// ops
	RouteHealth  = "/healthz"
	RouteReady   = "/readyz"
	RouteMetrics = "/metrics"
)
