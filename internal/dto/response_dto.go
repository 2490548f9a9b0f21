package dto

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message      string            `json:"message"`
	Details      []string          `json:"details,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"` // per-field validation messages
	Notification *Notification     `json:"notification,omitempty"`
}

// Notification is a toast the client shows after an auth action.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"` // "default" or "destructive"
}

type MessageResponse struct {
	Message      string        `json:"message"`
	Notification *Notification `json:"notification,omitempty"`
}
