package groundstation

/*------------------------------------------------------------------
 *
 * Purpose: Advertise the decoder's live packet feed over mDNS/DNS-SD, so
 *          a phone or tablet on the same network can find the ground
 *          station without typing an IP, the same role this played for
 *          announcing a KISS-over-TCP service.
 *
 *-------------------------------------------------------------------*/

import (
	"context"
	"fmt"

	"github.com/brutella/dnssd"
)

// ServiceType is the DNS-SD service type this decoder's relay feed is
// announced under.
const ServiceType = "_rtxdecode._tcp"

// Announcer advertises a live packet feed over mDNS until Stop is called.
type Announcer struct {
	responder dnssd.Responder
	cancel    context.CancelFunc
}

// Announce starts advertising name on port, returning once the service
// has been added to the responder; the responder itself runs in the
// background until Stop is called.
func Announce(name string, port int) (*Announcer, error) {
	cfg := dnssd.Config{
		Name: name,
		Type: ServiceType,
		Port: port,
	}
	sv, err := dnssd.NewService(cfg)
	if err != nil {
		return nil, fmt.Errorf("groundstation: creating dns-sd service: %w", err)
	}

	rp, err := dnssd.NewResponder()
	if err != nil {
		return nil, fmt.Errorf("groundstation: creating dns-sd responder: %w", err)
	}
	if _, err := rp.Add(sv); err != nil {
		return nil, fmt.Errorf("groundstation: adding dns-sd service: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &Announcer{responder: rp, cancel: cancel}
	go rp.Respond(ctx) //nolint:errcheck

	return a, nil
}

// Stop ends the mDNS responder goroutine.
func (a *Announcer) Stop() { a.cancel() }
