//go:build linux

package mem

import (
	"fmt"
	"os"
)

// CRTC register interface for the hardware cursor.
const (
	crtcIndexPort = 0x3D4
	crtcDataPort  = 0x3D5
	cursorHighReg = 0x0E
	cursorLowReg  = 0x0F
)

// CursorPorts drives the CRTC cursor location registers through
// /dev/port.
type CursorPorts struct {
	f *os.File
}

// OpenPorts opens /dev/port for CRTC access. Needs the same privileges
// as /dev/mem.
func OpenPorts() (*CursorPorts, error) {
	f, err := os.OpenFile("/dev/port", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("mem: cannot open /dev/port: %w", err)
	}
	return &CursorPorts{f: f}, nil
}

// Set programs the cursor location register with a linear cell index.
// Port write errors are dropped; the cursor is cosmetic and the output
// path stays infallible.
func (p *CursorPorts) Set(pos int) {
	p.out(cursorHighReg, byte(pos>>8))
	p.out(cursorLowReg, byte(pos))
}

// out writes one CRTC register: index to 0x3D4, value to 0x3D5.
func (p *CursorPorts) out(index, value byte) {
	p.f.WriteAt([]byte{index}, crtcIndexPort) //nolint:errcheck // best effort
	p.f.WriteAt([]byte{value}, crtcDataPort)  //nolint:errcheck // best effort
}

// Close closes /dev/port.
func (p *CursorPorts) Close() error {
	return p.f.Close()
}
