package storage

import "errors"

// Common storage errors
var (
	// ErrAgentNotFound indicates that agent was not found in storage
	ErrAgentNotFound = errors.New("agent not found")

	// ErrAgentAlreadyExists indicates that agent with this username already exists
	ErrAgentAlreadyExists = errors.New("agent already exists")

	// ErrPropertyNotFound indicates that property was not found
	ErrPropertyNotFound = errors.New("property not found")

	// ErrProjectNotFound indicates that project was not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrMilestoneNotFound indicates that milestone was not found
	ErrMilestoneNotFound = errors.New("milestone not found")
)
