// Package platform models the external commerce-platform integration.
// The real protocol is out of scope; this core only invokes the
// collaborator and awaits its acknowledgement.
package platform

import (
	"context"
	"time"
)

// Client is the opaque collaborator contract.
type Client interface {
	// SyncInventory pushes the store's inventory to the external
	// platform identified by storeDomain and waits for the ack.
	SyncInventory(ctx context.Context, storeDomain string) error
}

// StubClient acknowledges every sync after a fixed delay. It stands in
// for the real integration in this demo.
type StubClient struct {
	delay time.Duration
}

// NewStubClient creates a stub that resolves after the given delay.
func NewStubClient(delay time.Duration) *StubClient {
	return &StubClient{delay: delay}
}

func (c *StubClient) SyncInventory(ctx context.Context, storeDomain string) error {
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
