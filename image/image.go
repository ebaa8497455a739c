// Package image implements readers for the program images loaded in the
// emulator memory: raw binaries and hex dumps.
package image

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"emu6502/emu/log"
)

// Segment is a contiguous block of bytes to load at Addr.
type Segment struct {
	Addr uint16
	Data []byte
}

// End returns the address of the last byte of the segment.
func (s Segment) End() uint16 {
	return s.Addr + uint16(len(s.Data)) - 1
}

type Format uint8

const (
	Raw Format = iota // binary, loaded at a given address
	Hex               // text dump, one line per segment
)

func (f Format) String() string {
	if f == Hex {
		return "hex dump"
	}
	return "raw binary"
}

// Image is a program image, made of one or more segments.
type Image struct {
	Path     string
	Format   Format
	Segments []Segment
}

// FormatOf returns the image format to use for the file at path, based on
// its extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hex", ".txt":
		return Hex
	}
	return Raw
}

// Read loads the image file at path. Hex dump files (.hex or .txt) carry
// absolute addresses. Any other file is a raw binary placed at loadAddr.
func Read(path string, loadAddr uint16) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img := &Image{Path: path, Format: FormatOf(path)}
	switch img.Format {
	case Hex:
		img.Segments, err = ReadHex(f)
	default:
		var seg Segment
		seg, err = ReadRaw(f, loadAddr)
		img.Segments = []Segment{seg}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "image %s", filepath.Base(path))
	}

	log.ModImage.InfoZ("image loaded").
		String("path", path).
		Stringer("format", img.Format).
		Int("segments", len(img.Segments)).
		End()
	return img, nil
}

// ReadRaw reads a raw binary to be placed at addr. The binary must fit
// between addr and the end of the address space.
func ReadRaw(r io.Reader, addr uint16) (Segment, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Segment{}, err
	}
	if len(buf) == 0 {
		return Segment{}, errors.New("empty image")
	}
	if avail := 0x10000 - int(addr); len(buf) > avail {
		return Segment{}, errors.Errorf("image too large: %d bytes at $%04X (max %d)", len(buf), addr, avail)
	}
	return Segment{Addr: addr, Data: buf}, nil
}

// ReadHex reads a hex dump. Each non-empty line is an address followed by a
// colon and bytes in hexadecimal, separated by spaces:
//
//	A000: A9 01 8D 00 02
//
// Text following a '#' is a comment.
func ReadHex(r io.Reader) ([]Segment, error) {
	var segs []Segment

	scan := bufio.NewScanner(r)
	lineno := 0
	for scan.Scan() {
		lineno++
		line, _, _ := strings.Cut(scan.Text(), "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		off, octets, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Errorf("line %d: missing address", lineno)
		}
		addr, err := strconv.ParseUint(strings.TrimSpace(off), 16, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: malformed address %q", lineno, off)
		}
		data, err := hex.DecodeString(strings.Join(strings.Fields(octets), ""))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		if len(data) == 0 {
			continue
		}
		if int(addr)+len(data) > 0x10000 {
			return nil, errors.Errorf("line %d: segment overflows the address space", lineno)
		}

		// Merge with the previous segment when contiguous.
		if n := len(segs); n > 0 && int(segs[n-1].Addr)+len(segs[n-1].Data) == int(addr) {
			segs[n-1].Data = append(segs[n-1].Data, data...)
			continue
		}
		segs = append(segs, Segment{Addr: uint16(addr), Data: data})
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, errors.New("empty image")
	}

	return segs, nil
}

// Size returns the total number of bytes in the image.
func (img *Image) Size() int {
	size := 0
	for _, seg := range img.Segments {
		size += len(seg.Data)
	}
	return size
}

// Infos prints a description of the image segments.
func (img *Image) Infos(w io.Writer) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Image: %s\n", img.Path)
	fmt.Fprintf(&buf, "Format: %s\n", img.Format)
	fmt.Fprintf(&buf, "Size: %d bytes\n", img.Size())
	fmt.Fprintf(&buf, "Segments: %d\n", len(img.Segments))
	for _, seg := range img.Segments {
		fmt.Fprintf(&buf, "  $%04X-$%04X  %5d bytes\n", seg.Addr, seg.End(), len(seg.Data))
	}
	w.Write(buf.Bytes())
}
