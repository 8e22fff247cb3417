package handlers

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
