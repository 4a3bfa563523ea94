// Package wallet models the browser wallet connection as seen by the server:
// a per-session connection status reported by the browser library, and the
// mount point the library renders its connect button into.
//
// No wallet protocol work happens here. The browser library owns the
// handshake; the server only keeps the last status it was told about.
package wallet

import (
	"errors"
	"fmt"
	"strings"
)

// ConnectionStatus is the state reported by the browser wallet library.
type ConnectionStatus string

const (
	StatusUnknown      ConnectionStatus = "unknown"
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusConnected    ConnectionStatus = "connected"
)

// ErrInvalidStatus is returned by ParseStatus for values outside the enum.
var ErrInvalidStatus = errors.New("invalid connection status")

// ErrNoSession is returned when a request carries no session id.
var ErrNoSession = errors.New("no wallet session")

// ParseStatus validates a status string sent by the browser.
func ParseStatus(s string) (ConnectionStatus, error) {
	switch st := ConnectionStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusUnknown, StatusDisconnected, StatusConnecting, StatusConnected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Connected reports whether a wallet is linked to the session.
// Anything but StatusConnected, including the zero value, is not connected.
func (s ConnectionStatus) Connected() bool {
	return s == StatusConnected
}

func (s ConnectionStatus) String() string {
	if s == "" {
		return string(StatusUnknown)
	}
	return string(s)
}
