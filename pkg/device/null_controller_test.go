package device

import (
	"context"
	"errors"
	"testing"
)

func TestNullController(t *testing.T) {
	c := NewNullController()
	ctx := context.Background()

	if c.IsConnected() {
		t.Error("null controller must report disconnected")
	}

	if _, err := c.Send(ctx, "1A2B3C", 0x11FF, ""); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected from Send, got: %v", err)
	}

	if _, err := c.Status(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected from Status, got: %v", err)
	}

	c.Close()
}
