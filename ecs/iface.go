package ecs

import "unsafe"

// iface mirrors the runtime layout of an interface value so the data word can
// be read without reflection.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataPointer returns the pointer held in an interface that wraps a pointer.
func dataPointer(v any) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&v)).data
}
