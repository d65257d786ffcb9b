//go:build linux

package mem

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/pkoval/vgacons/internal/vga"
)

// DevMem maps a physical memory window through /dev/mem. Mapping the
// text window at vga.BufferAddr on a machine whose console is in text
// mode gives direct access to the live display. Requires root (or
// CAP_SYS_RAWIO) and a kernel that permits the range; the legacy video
// area below 1MB normally is.
type DevMem struct {
	f     *os.File
	raw   []byte
	data  []byte
	ports *CursorPorts
}

var (
	_ vga.Region       = (*DevMem)(nil)
	_ vga.CursorSetter = (*DevMem)(nil)
)

// MapPhys maps n 16-bit words of physical memory starting at addr.
func MapPhys(addr uintptr, n int) (*DevMem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("mem: cannot open /dev/mem: %w", err)
	}

	// Mmap offsets must be page-aligned; addr itself may not be.
	page := int64(unix.Getpagesize())
	off := int64(addr) &^ (page - 1)
	shift := int(int64(addr) - off)
	length := shift + n*2

	raw, err := unix.Mmap(int(f.Fd()), off, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mem: cannot map %#x: %w", addr, err)
	}

	return &DevMem{f: f, raw: raw, data: raw[shift : shift+n*2]}, nil
}

// Load reads the word at cell index i straight from the mapping.
func (m *DevMem) Load(i int) uint16 {
	return binary.LittleEndian.Uint16(m.data[i*2:])
}

// Store writes the word at cell index i straight into the mapping: the
// character byte lands first, the attribute byte second, as the device
// expects.
func (m *DevMem) Store(i int, w uint16) {
	binary.LittleEndian.PutUint16(m.data[i*2:], w)
}

// AttachPorts wires hardware cursor updates to the CRTC ports.
func (m *DevMem) AttachPorts(p *CursorPorts) {
	m.ports = p
}

// SetCursor moves the hardware cursor when ports are attached.
func (m *DevMem) SetCursor(pos int) {
	if m.ports != nil {
		m.ports.Set(pos)
	}
}

// Close unmaps the window and closes /dev/mem.
func (m *DevMem) Close() error {
	if err := unix.Munmap(m.raw); err != nil {
		m.f.Close()
		return fmt.Errorf("mem: cannot unmap: %w", err)
	}
	return m.f.Close()
}
