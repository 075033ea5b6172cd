package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type testPayload struct {
	Email string `validate:"omitempty,email"`
	Name  string `validate:"omitempty,name"`
	Role  string `validate:"omitempty,role"`
	URL   string `validate:"omitempty,url"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		payload testPayload
		wantErr bool
	}{
		{name: "valid email", payload: testPayload{Email: "user@example.com"}},
		{name: "invalid email", payload: testPayload{Email: "not-an-email"}, wantErr: true},
		{name: "valid name", payload: testPayload{Name: "Data Platform"}},
		{name: "too short name", payload: testPayload{Name: "x"}, wantErr: true},
		{name: "admin role", payload: testPayload{Role: "admin"}},
		{name: "user role", payload: testPayload{Role: "user"}},
		{name: "unknown role", payload: testPayload{Role: "owner"}, wantErr: true},
		{name: "valid url", payload: testPayload{URL: "https://bi.example.com/d/42"}},
		{name: "garbage url", payload: testPayload{URL: "::::"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(testPayload{Email: "bad", Role: "owner"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := FormatValidationError(err)
	if len(formatted) != 2 {
		t.Fatalf("got %d errors, want 2", len(formatted))
	}
	if formatted[0].Field != "Email" {
		t.Errorf("got field %q, want Email", formatted[0].Field)
	}
}
