package recipe

import (
	"testing"

	pkgerrors "github.com/fpagliughi/sockpkg/pkg/errors"
)

func TestParseOptionValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OptionValue
		wantErr bool
	}{
		{name: "on", input: "on", want: OptionEnabled},
		{name: "true", input: "true", want: OptionEnabled},
		{name: "yes uppercase", input: "YES", want: OptionEnabled},
		{name: "enabled", input: "enabled", want: OptionEnabled},
		{name: "off", input: "off", want: OptionDisabled},
		{name: "false", input: "false", want: OptionDisabled},
		{name: "no", input: "no", want: OptionDisabled},
		{name: "disabled padded", input: " disabled ", want: OptionDisabled},
		{name: "empty is deferred", input: "", want: OptionDeferred},
		{name: "default", input: "default", want: OptionDeferred},
		{name: "deferred", input: "deferred", want: OptionDeferred},
		{name: "none", input: "none", want: OptionDeferred},
		{name: "garbage", input: "maybe", wantErr: true},
		{name: "numeric", input: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptionValue(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOptionValue(%q) expected error", tt.input)
				}
				if code := pkgerrors.CodeOf(err); code != pkgerrors.ErrCodeInvalidOption {
					t.Errorf("error code = %s, want %s", code, pkgerrors.ErrCodeInvalidOption)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptionValue(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOptionValue(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultOptionsAllDeferred(t *testing.T) {
	opts := DefaultOptions()
	for name, value := range map[string]OptionValue{
		"shared":   opts.Shared,
		"examples": opts.Examples,
		"tests":    opts.Tests,
		"docs":     opts.Docs,
	} {
		if value != OptionDeferred {
			t.Errorf("default for %s = %s, want %s", name, value, OptionDeferred)
		}
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		want    Options
		wantErr bool
	}{
		{
			name:   "empty map yields defaults",
			values: map[string]string{},
			want:   DefaultOptions(),
		},
		{
			name:   "shared on",
			values: map[string]string{"shared": "on"},
			want: Options{
				Shared:   OptionEnabled,
				Examples: OptionDeferred,
				Tests:    OptionDeferred,
				Docs:     OptionDeferred,
			},
		},
		{
			name:   "tests off docs on",
			values: map[string]string{"tests": "off", "docs": "on"},
			want: Options{
				Shared:   OptionDeferred,
				Examples: OptionDeferred,
				Tests:    OptionDisabled,
				Docs:     OptionEnabled,
			},
		},
		{
			name:    "unrecognized key",
			values:  map[string]string{"coverage": "on"},
			wantErr: true,
		},
		{
			name:    "unrecognized key among valid ones",
			values:  map[string]string{"shared": "on", "lto": "off"},
			wantErr: true,
		},
		{
			name:    "bad value on valid key",
			values:  map[string]string{"docs": "sometimes"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.values)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if code := pkgerrors.CodeOf(err); code != pkgerrors.ErrCodeInvalidOption {
					t.Errorf("error code = %s, want %s", code, pkgerrors.ErrCodeInvalidOption)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := DefaultOptions()
	bad.Tests = OptionValue("sometimes")
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for out-of-enum value")
	}

	// The zero value is deliberately invalid: it would be indistinguishable
	// from a forgotten initialization.
	if err := (Options{}).Validate(); err == nil {
		t.Error("expected validation error for zero-value options")
	}
}

func TestSupportedOptionNames(t *testing.T) {
	names := SupportedOptionNames()
	if len(names) != 4 {
		t.Fatalf("expected 4 option names, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
