package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// AgentIDKey ключ для хранения agent_id в контексте
	AgentIDKey contextKey = "agent_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetAgentID извлекает agent_id из контекста запроса
func GetAgentID(ctx context.Context) (string, bool) {
	agentID, ok := ctx.Value(AgentIDKey).(string)
	return agentID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
