package server

import (
	"fmt"

	"github.com/grandcat/zeroconf"
)

const (
	mdnsInstance = "sepgen provisioning"
	mdnsService  = "_http._tcp"
	mdnsDomain   = "local."
)

// announcer wraps the registered mDNS service for shutdown.
type announcer struct {
	server *zeroconf.Server
}

// announce registers the provisioning server on the local network so it can
// be found with any mDNS browser.
func announce(port int) (*announcer, error) {
	srv, err := zeroconf.Register(mdnsInstance, mdnsService, mdnsDomain, port,
		[]string{"path=/"}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return &announcer{server: srv}, nil
}

func (a *announcer) shutdown() {
	a.server.Shutdown()
}
