// Package snapshot holds the serializable state of the emulated machine, so
// that a run can be saved and resumed later.
package snapshot

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Version of the snapshot format.
const Version = 1

const ramSize = 0x10000

type State struct {
	Version int
	CPU     CPU
	RAM     [ramSize]uint8
}

type CPU struct {
	PC uint16
	SP uint8
	P  uint8
	A  uint8
	X  uint8
	Y  uint8

	Instructions int64
}

func (s *State) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}

func (s *State) UnmarshalJSON(data []byte) error {
	return s.Decode(jx.DecodeBytes(data))
}

// Encode writes s as a JSON object. RAM is base64 encoded.
func (s *State) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("version")
	e.Int(s.Version)
	e.FieldStart("cpu")
	s.CPU.Encode(e)
	e.FieldStart("ram")
	e.Base64(s.RAM[:])
	e.ObjEnd()
}

// Decode reads s from a JSON object. Unknown fields are skipped.
func (s *State) Decode(d *jx.Decoder) error {
	// Field errors are kept aside, since jx decorates errors returned by
	// the callback.
	var ferr error
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "version":
			v, err := d.Int()
			if err != nil {
				ferr = errors.Wrap(err, "version")
				return ferr
			}
			if v != Version {
				ferr = errors.Errorf("unsupported snapshot version %d (want %d)", v, Version)
				return ferr
			}
			s.Version = v
		case "cpu":
			if err := s.CPU.Decode(d); err != nil {
				ferr = errors.Wrap(err, "cpu")
				return ferr
			}
		case "ram":
			ram, err := d.Base64()
			if err != nil {
				ferr = errors.Wrap(err, "ram")
				return ferr
			}
			if len(ram) != ramSize {
				ferr = errors.Errorf("ram: got %d bytes, want %d", len(ram), ramSize)
				return ferr
			}
			copy(s.RAM[:], ram)
		default:
			return d.Skip()
		}
		return nil
	})
	if ferr != nil {
		return ferr
	}
	return err
}

func (c *CPU) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("pc")
	e.Int(int(c.PC))
	e.FieldStart("sp")
	e.Int(int(c.SP))
	e.FieldStart("p")
	e.Int(int(c.P))
	e.FieldStart("a")
	e.Int(int(c.A))
	e.FieldStart("x")
	e.Int(int(c.X))
	e.FieldStart("y")
	e.Int(int(c.Y))
	e.FieldStart("instructions")
	e.Int64(c.Instructions)
	e.ObjEnd()
}

func (c *CPU) Decode(d *jx.Decoder) error {
	var ferr error
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			var v int
			if v, err = decodeUint(d, 0xFFFF); err == nil {
				c.PC = uint16(v)
			}
		case "sp":
			err = decodeReg8(d, &c.SP)
		case "p":
			err = decodeReg8(d, &c.P)
		case "a":
			err = decodeReg8(d, &c.A)
		case "x":
			err = decodeReg8(d, &c.X)
		case "y":
			err = decodeReg8(d, &c.Y)
		case "instructions":
			c.Instructions, err = d.Int64()
		default:
			return d.Skip()
		}
		if err != nil {
			ferr = errors.Wrap(err, key)
			return ferr
		}
		return nil
	})
	if ferr != nil {
		return ferr
	}
	return err
}

func decodeReg8(d *jx.Decoder, reg *uint8) error {
	v, err := decodeUint(d, 0xFF)
	if err != nil {
		return err
	}
	*reg = uint8(v)
	return nil
}

// ErrOutOfRange is returned when a register value doesn't fit its register.
var ErrOutOfRange = errors.New("out of range")

func decodeUint(d *jx.Decoder, hi int) (int, error) {
	v, err := d.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > hi {
		return 0, errors.Errorf("value %d not in [0, %d]: %w", v, hi, ErrOutOfRange)
	}
	return v, nil
}
