//go:build !linux

package mem

import "errors"

// DevMem is only functional on Linux; this stub keeps the command line
// building elsewhere.
type DevMem struct{}

// MapPhys always fails off Linux.
func MapPhys(addr uintptr, n int) (*DevMem, error) {
	return nil, errors.New("mem: /dev/mem mapping requires linux")
}

func (m *DevMem) Load(i int) uint16          { return 0 }
func (m *DevMem) Store(i int, w uint16)      {}
func (m *DevMem) AttachPorts(p *CursorPorts) {}
func (m *DevMem) SetCursor(pos int)          {}
func (m *DevMem) Close() error               { return nil }

// CursorPorts is only functional on Linux.
type CursorPorts struct{}

// OpenPorts always fails off Linux.
func OpenPorts() (*CursorPorts, error) {
	return nil, errors.New("mem: /dev/port access requires linux")
}

func (p *CursorPorts) Set(pos int)  {}
func (p *CursorPorts) Close() error { return nil }
