package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Message roles used in the chat transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Identity is the locally held record of the signed-in user. The ID is
// derived deterministically from the email and is the join key for every
// remote call; equality is by ID.
type Identity struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	DisplayName        string `json:"display_name"`
	SystemInstructions string `json:"system_instructions"`
}

// Source is a news citation attached to an assistant message.
type Source struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
}

// Message is a single turn of the chat transcript.
type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Sources []Source `json:"sources,omitempty"`
}

// NewsItem is one curated article returned by the news endpoint.
type NewsItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Date  string `json:"date"`
}

// Report is a generated text report.
type Report struct {
	Content     string `json:"content"`
	GeneratedAt string `json:"generatedAt"`
}

// Podcast holds the audio produced by the latest podcast run. AudioURL is
// empty until a podcast has been generated in the current session.
type Podcast struct {
	AudioURL string `json:"audioUrl"`
}
