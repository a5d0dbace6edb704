package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "jan@example.com", wantErr: false},
		{name: "valid with plus", email: "jan+test@example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "jan.example.com", wantErr: true},
		{name: "no domain dot", email: "jan@example", wantErr: true},
		{name: "spaces", email: "jan kowalski@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
}

func TestValidateTitle(t *testing.T) {
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("   "))
	assert.Error(t, ValidateTitle(strings.Repeat("x", MaxTitleLen+1)))
	assert.NoError(t, ValidateTitle("Laptop Lenovo"))
}

func TestValidateStartingPrice(t *testing.T) {
	assert.Error(t, ValidateStartingPrice(0))
	assert.Error(t, ValidateStartingPrice(-10))
	assert.NoError(t, ValidateStartingPrice(0.01))
	assert.NoError(t, ValidateStartingPrice(100))
}
