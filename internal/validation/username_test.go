package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid simple", username: "agent_ivanova", wantErr: false},
		{name: "valid with digits", username: "agent42", wantErr: false},
		{name: "valid minimal length", username: "abc", wantErr: false},
		{name: "valid maximal length", username: strings.Repeat("a", MaxUsernameLen), wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLen+1), wantErr: true},
		{name: "spaces", username: "agent ivanova", wantErr: true},
		{name: "cyrillic", username: "агент", wantErr: true},
		{name: "special chars", username: "agent@home", wantErr: true},
		{name: "dash", username: "agent-ivanova", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "longenoughpassword", wantErr: false},
		{name: "exactly min", password: strings.Repeat("x", MinPasswordLen), wantErr: false},
		{name: "empty", password: "", wantErr: true},
		{name: "too short", password: "short", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
