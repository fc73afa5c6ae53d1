package client

import "github.com/denoise-ai/denoise/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Identity = types.Identity
	Message  = types.Message
	Source   = types.Source
	NewsItem = types.NewsItem
	Report   = types.Report
	Podcast  = types.Podcast

	// Requests
	UpsertProfileRequest = types.UpsertProfileRequest
	GenerateRequest      = types.GenerateRequest

	// Responses
	InstructionsResponse = types.InstructionsResponse
	ChatResponse         = types.ChatResponse
	ClearSessionResponse = types.ClearSessionResponse
	PodcastResponse      = types.PodcastResponse
	EnqueueAck           = types.EnqueueAck
)

// Message roles re-exported for transcript construction.
const (
	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant
)
