package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr bool
	}{
		{"all classes present", "Str0ng!pass", false},
		{"too short", "S1!a", true},
		{"no upper", "str0ng!pass", true},
		{"no lower", "STR0NG!PASS", true},
		{"no digit", "Strong!pass", true},
		{"no special", "Str0ngpass1", true},
		{"exactly eight", "Aa1!aaaa", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.pw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	got, err := ValidateUsername("  alice  ")
	assert.NoError(t, err)
	assert.Equal(t, "alice", got)

	_, err = ValidateUsername("a")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"alice@example.com", false},
		{"a@b.co", false},
		{"no-at-sign", true},
		{"@example.com", true},
		{"alice@", true},
		{"alice@nodot", true},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			_, err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
