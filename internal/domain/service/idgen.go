// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// IDGenerator produces opaque unique string tokens. It is used for hotspot,
// event and reward ids; participant ids are caller-supplied and never
// generated.
type IDGenerator interface {
	NewID() string
}
