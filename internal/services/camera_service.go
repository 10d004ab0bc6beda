package services

import "bookworm/internal/domain"

// Camera is the capture collaborator: given a photo slot it eventually yields
// an image payload, or nothing when the user cancels, delivered exactly once.
type Camera interface {
	Capture(slot domain.PhotoSlot) ([]byte, bool)
}

// StubCamera stands in for the device camera and always yields a tiny
// placeholder payload tagged with the slot name.
type StubCamera struct{}

func (StubCamera) Capture(slot domain.PhotoSlot) ([]byte, bool) {
	return []byte("capture:" + string(slot)), true
}

// CancelledCamera yields no result, the user-cancel path.
type CancelledCamera struct{}

func (CancelledCamera) Capture(domain.PhotoSlot) ([]byte, bool) { return nil, false }
