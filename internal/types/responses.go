package types

// ------------------------------
// Response Types
// ------------------------------

// InstructionsResponse is the stored profile record as returned by
// GET /api/user/{id}/instructions.
type InstructionsResponse struct {
	UserID       string `json:"user_id"`
	Instructions string `json:"instructions"`
	DisplayName  string `json:"display_name"`
}

// ChatResponse is the assistant's answer plus the news sources it cites.
type ChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources,omitempty"`
}

// ClearSessionResponse acknowledges a server-side session purge.
type ClearSessionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PodcastResponse carries the generated script and the synthesized audio URL.
type PodcastResponse struct {
	Script   string `json:"script"`
	AudioURL string `json:"audioUrl"`
}

// EnqueueAck acknowledges that an async job was accepted by the executor.
type EnqueueAck struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}
