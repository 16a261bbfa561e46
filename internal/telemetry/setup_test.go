package telemetry_test

import (
	"context"
	"testing"

	"github.com/royalcat/rlabel/internal/telemetry"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	ctx := context.Background()
	client, err := telemetry.Setup(ctx, "rlabel_test", "")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := client.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	client.Shutdown(ctx)
}
