package telemetry

// Event names recorded by the chat server.
const (
	EventChatRequest = "chat_request"
	EventServerStart = "server_start"
)
