// Package server serves generated provisioning files over HTTP.
//
// Cisco phones fetch SEP<MAC>.cnf.xml from their configured TFTP or HTTP
// source on boot. This server exposes the generate command's output directory
// so a lab or small site can skip standing up a TFTP server. Only exact
// provisioning file names are served; there is no directory listing.
//
// The service can optionally announce itself over mDNS (_http._tcp) so it is
// discoverable on the local network.
package server
