package insteon

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Descriptor describes how to send one named command: the opcode pair,
// how many times to send it and whether it carries extended data.
type Descriptor struct {
	Name            string  `json:"name"`
	Command         Command `json:"-"`
	ExpectsResponse bool    `json:"expects_response"`
	Times           int     `json:"times"`
	Extended        bool    `json:"extended"`
	ExtendedData    string  `json:"extended_data,omitempty"`
}

// Cmd1 returns cmd1 as two uppercase hex digits.
func (d Descriptor) Cmd1() string {
	return d.Command.Cmd1Hex()
}

// Cmd2 returns cmd2 as two uppercase hex digits.
func (d Descriptor) Cmd2() string {
	return d.Command.Cmd2Hex()
}

// WithOpcodes returns a copy of d with cmd1 and/or cmd2 replaced. Empty
// arguments keep the current byte. The checksum byte of an extended payload
// is recomputed for the new opcodes.
func (d Descriptor) WithOpcodes(cmd1, cmd2 string) (Descriptor, error) {
	c1, c2 := d.Command.Cmd1(), d.Command.Cmd2()

	if cmd1 != "" {
		b, err := ParseCommandByte(cmd1)
		if err != nil {
			return Descriptor{}, err
		}
		c1 = b
	}
	if cmd2 != "" {
		b, err := ParseCommandByte(cmd2)
		if err != nil {
			return Descriptor{}, err
		}
		c2 = b
	}

	cmd := NewCommand(c1, c2)
	if d.Extended && cmd != d.Command {
		data, err := ChecksumExtendedData(cmd, d.ExtendedData)
		if err != nil {
			return Descriptor{}, err
		}
		d.ExtendedData = data
	}
	d.Command = cmd
	return d, nil
}

// WithExtendedData returns a copy of d marked extended and carrying the
// normalized payload.
func (d Descriptor) WithExtendedData(data string) (Descriptor, error) {
	normalized, err := NormalizeExtendedData(data)
	if err != nil {
		return Descriptor{}, err
	}
	d.Extended = true
	d.ExtendedData = normalized
	return d, nil
}

type entry struct {
	cmd1, cmd2 byte
	times      int
	response   bool
	extended   string
}

var commandTable = map[string]entry{
	"on":             {cmd1: 0x11, cmd2: 0xFF},
	"fast_on":        {cmd1: 0x12, cmd2: 0xFF},
	"off":            {cmd1: 0x13, cmd2: 0x00},
	"fast_off":       {cmd1: 0x14, cmd2: 0x00},
	"brighten":       {cmd1: 0x15, cmd2: 0x00},
	"dim":            {cmd1: 0x16, cmd2: 0x00},
	"status":         {cmd1: 0x19, cmd2: 0x00, response: true},
	"engine_version": {cmd1: 0x0D, cmd2: 0x00, response: true},
	"ping":           {cmd1: 0x0F, cmd2: 0x00, response: true},
	"id_request":     {cmd1: 0x10, cmd2: 0x00, response: true},
	"imeter_reset":   {cmd1: 0x80, cmd2: 0x00},
	"imeter_status":  {cmd1: 0x82, cmd2: 0x00, response: true},

	"beep":             {cmd1: 0x30, cmd2: 0x00},
	"beep_two_times":   {cmd1: 0x30, cmd2: 0x00, times: 2},
	"beep_three_times": {cmd1: 0x30, cmd2: 0x00, times: 3},
	"beep_four_times":  {cmd1: 0x30, cmd2: 0x00, times: 4},
	"beep_five_times":  {cmd1: 0x30, cmd2: 0x00, times: 5},
	"beep_six_times":   {cmd1: 0x30, cmd2: 0x00, times: 6},
	"beep_seven_times": {cmd1: 0x30, cmd2: 0x00, times: 7},
	"beep_eight_times": {cmd1: 0x30, cmd2: 0x00, times: 8},
	"beep_nine_times":  {cmd1: 0x30, cmd2: 0x00, times: 9},
	"beep_ten_times":   {cmd1: 0x30, cmd2: 0x00, times: 10},

	// Extended payloads end with the I2CS checksum of cmd1+cmd2+data.
	"extended_info":   {cmd1: 0x2E, cmd2: 0x00, response: true, extended: "D2"},
	"thermostat_info": {cmd1: 0x2E, cmd2: 0x02, response: true, extended: "D0"},
}

// catalog is built once from commandTable and never written afterwards.
var catalog = buildCatalog()

func buildCatalog() map[string]Descriptor {
	out := make(map[string]Descriptor, len(commandTable))
	for name, e := range commandTable {
		d := Descriptor{
			Name:            name,
			Command:         NewCommand(e.cmd1, e.cmd2),
			ExpectsResponse: e.response,
			Times:           clampTimes(e.times),
		}
		if e.extended != "" {
			var err error
			d, err = d.WithExtendedData(e.extended)
			if err != nil {
				panic(fmt.Sprintf("insteon: bad extended data for %s: %v", name, err))
			}
		}
		out[name] = d
	}
	return out
}

// Resolve looks up a symbolic command name. Case and surrounding whitespace
// are ignored.
func Resolve(name string) (Descriptor, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	d, ok := catalog[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return d, nil
}

// Direct builds a descriptor from explicit cmd1/cmd2 hex bytes, bypassing
// the catalog. It is sent once and carries no extended data.
func Direct(cmd1, cmd2 string) (Descriptor, error) {
	c1, err := ParseCommandByte(cmd1)
	if err != nil {
		return Descriptor{}, err
	}
	c2, err := ParseCommandByte(cmd2)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Command: NewCommand(c1, c2),
		Times:   1,
	}, nil
}

// Commands returns every catalog entry sorted by name.
func Commands() []Descriptor {
	out := make([]Descriptor, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseCommandByte parses one or two hex digits into a command byte.
func ParseCommandByte(text string) (byte, error) {
	s := strings.TrimSpace(text)
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCommandByte, text)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCommandByte, text)
	}
	return byte(v), nil
}

func clampTimes(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
