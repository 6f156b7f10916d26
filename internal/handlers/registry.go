package handlers

// AppHandlers groups every handler for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	HRHandler          *HRHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
