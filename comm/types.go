package comm

import "errors"

// Sentinel errors for comm operations.
var (
	// ErrWorldSize indicates a non-positive world size.
	ErrWorldSize = errors.New("comm: world size must be at least one rank")
	// ErrRankRange indicates a rank index outside [0, Size).
	ErrRankRange = errors.New("comm: rank index out of range")
	// ErrTagMismatch indicates a received message with an unexpected tag.
	ErrTagMismatch = errors.New("comm: message tag mismatch")
	// ErrPayloadType indicates a received payload of an unexpected type.
	ErrPayloadType = errors.New("comm: payload type mismatch")
)

// mailboxDepth bounds how far one rank may run ahead of a neighbor within a
// single exchange round. Exchanges post at most a handful of strips per pair
// per round, so a small constant suffices.
const mailboxDepth = 16

// packet is one point-to-point message: an application tag plus its payload.
type packet struct {
	tag     int
	payload any
}
