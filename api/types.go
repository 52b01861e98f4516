package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	languageHandler languageHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Project with ID 7 not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"title is required"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ReorderProjectsBody mirrors services.ReorderProjectsRequest for documentation
// @Description Project ids in the desired order
type ReorderProjectsBody struct {
	ProjectIDs []uint `json:"projectIds" example:"3,1,2"`
}
