package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	session sessionMiddleware

	activityHandler     crudHandlerSet
	educationHandler    crudHandlerSet
	experienceHandler   crudHandlerSet
	organizationHandler crudHandlerSet
	projectHandler      crudHandlerSet
	skillHandler        crudHandlerSet
	socialMediaHandler  crudHandlerSet
	serviceHandler      crudHandlerSet

	articleHandler   articleHandler
	profileHandler   profileHandler
	contactHandler   contactHandler
	statsHandler     statsHandler
	portfolioHandler portfolioHandler
	publicHandler    publicHandler
	authHandler      authHandler
	uploadHandler    uploadHandler
	healthHandler    healthHandler
}

// ErrorResponse represents an error response from the API. Success is only
// set by the contact endpoints.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// envelope is the {success,...} body the contact endpoints answer with.
type envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
