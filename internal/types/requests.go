package types

// ------------------------------
// Request Types
// ------------------------------

// UpsertProfileRequest is the canonical profile record. The client always
// sends the full record; the server applies last-writer-wins.
type UpsertProfileRequest struct {
	UserID             string `json:"user_id"`
	Email              string `json:"email"`
	DisplayName        string `json:"display_name"`
	SystemInstructions string `json:"system_instructions"`
}

// ChatRequest holds one user message for the conversational endpoint.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ClearSessionRequest asks the server to drop its conversation memory
// for the given user.
type ClearSessionRequest struct {
	UserID string `json:"user_id"`
}

// GenerateRequest drives report and podcast generation.
type GenerateRequest struct {
	UserID string `json:"user_id"`
	Range  string `json:"range,omitempty"`
}
