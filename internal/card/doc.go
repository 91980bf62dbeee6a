// Package card infers payment card networks from card numbers and formats
// numbers and expiry dates the way checkout tools display them.
package card
