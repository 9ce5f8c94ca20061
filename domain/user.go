// Package domain contains core concepts of the realtime hub.
// No runtime, network, or storage logic should be added here.
package domain

// User is the identity resolved at handshake and attached to a connection.
type User struct {
	ID     string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
