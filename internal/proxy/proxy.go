// Package proxy generates the shell snippets that point a terminal session
// at the locally running mihomo proxy.
package proxy

import (
	"fmt"
	"net"
)

// ExportCommands renders export statements routing HTTP(S) traffic through
// host:httpPort and socks traffic through host:socksPort.
func ExportCommands(host string, httpPort, socksPort int) string {
	return fmt.Sprintf(
		"export https_proxy=http://%[1]s:%[2]d http_proxy=http://%[1]s:%[2]d all_proxy=socks5://%[1]s:%[3]d",
		host, httpPort, socksPort)
}

// UnsetCommands renders the matching unset statement.
func UnsetCommands() string {
	return "unset https_proxy http_proxy all_proxy"
}

// LanIP returns the machine's first non-loopback IPv4 address, for export
// snippets other LAN devices can use.
func LanIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", fmt.Errorf("listing network interfaces: %w", err)
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}
	return "", fmt.Errorf("no non-loopback IPv4 address found")
}
