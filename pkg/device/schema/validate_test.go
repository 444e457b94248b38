package schema

import (
	"encoding/json"
	"errors"
	"testing"
)

func hubConfigSchema() json.RawMessage {
	return json.RawMessage(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"address": {"type": "string", "pattern": "^[0-9]{1,3}(\\.[0-9]{1,3}){3}$"},
			"port": {"type": "string", "pattern": "^[0-9]{1,5}$"},
			"command": {"type": "string", "enum": ["on", "off"]}
		},
		"required": ["address"],
		"additionalProperties": false
	}`)
}

func TestValidate_ValidPayload(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"address": "192.168.1.5",
		"port":    "25105",
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_AddressOnly(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"address": "10.0.0.1",
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"port": "25105",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing address, got: %v", err)
	}
}

func TestValidate_InvalidEnum(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"address": "10.0.0.1",
		"command": "self_destruct",
	})
	if err == nil {
		t.Error("expected validation error for invalid enum value")
	}
}

func TestValidate_PatternMismatch(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"address": "hub.local",
	})
	if err == nil {
		t.Error("expected validation error for non dotted-quad address")
	}
}

func TestValidate_UnknownProperty(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"address": "10.0.0.1",
		"unknown": "value",
	})
	if err == nil {
		t.Error("expected validation error for unknown property")
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	v := NewValidator()

	// Empty schema means no validation
	err := v.Validate(json.RawMessage(`{}`), map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("empty schema should skip validation, got: %v", err)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	v := NewValidator()

	err := v.Validate(nil, map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidate_WrongType(t *testing.T) {
	v := NewValidator()

	err := v.Validate(hubConfigSchema(), map[string]any{
		"address": "10.0.0.1",
		"port":    float64(25105),
	})
	if err == nil {
		t.Error("expected validation error for wrong type")
	}
}

func TestValidateStrings(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateStrings(hubConfigSchema(), map[string]string{"address": "10.0.0.1", "port": "80"}); err != nil {
		t.Errorf("expected valid mapping, got: %v", err)
	}
	if err := v.ValidateStrings(hubConfigSchema(), map[string]string{"address": "10.0.0.1", "port": "eighty"}); err == nil {
		t.Error("expected validation error for non numeric port")
	}
}

func TestValidate_CachesSchema(t *testing.T) {
	v := NewValidator()
	schema := hubConfigSchema()

	// First call compiles
	err := v.Validate(schema, map[string]any{"address": "10.0.0.1"})
	if err != nil {
		t.Fatal(err)
	}

	// Second call should use cache
	err = v.Validate(schema, map[string]any{"address": "10.0.0.2"})
	if err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 1 {
		t.Errorf("expected 1 cached schema, got %d", cacheSize)
	}
}
