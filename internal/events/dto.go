package events

type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type DeleteEventResponse struct {
	Message      string `json:"message"`
	DeletedEvent *Event `json:"deletedEvent"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
