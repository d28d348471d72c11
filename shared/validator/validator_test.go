package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared/validator"
)

type createRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Guests int    `json:"guests" validate:"required,gt=0"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"name":"Deluxe Double Room","guests":2}`, wantErr: false},
		{name: "missing name", body: `{"guests":2}`, wantErr: true},
		{name: "zero guests", body: `{"name":"Deluxe Double Room","guests":0}`, wantErr: true},
		{name: "bad status", body: `{"name":"Deluxe Double Room","guests":2,"status":"done"}`, wantErr: true},
		{name: "malformed json", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("jane@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
