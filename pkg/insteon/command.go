package insteon

import "fmt"

// Command is the two byte cmd1/cmd2 pair of an Insteon message,
// cmd1 in the high byte.
type Command uint16

// NewCommand builds a Command from its two bytes.
func NewCommand(cmd1, cmd2 byte) Command {
	return Command(uint16(cmd1)<<8 | uint16(cmd2))
}

// Cmd1 returns the first command byte.
func (cmd Command) Cmd1() byte {
	return byte(cmd >> 8)
}

// Cmd2 returns the second command byte.
func (cmd Command) Cmd2() byte {
	return byte(cmd)
}

// SubCommand returns a new command with cmd2 replaced.
func (cmd Command) SubCommand(cmd2 byte) Command {
	return Command(uint16(cmd)&0xff00 | uint16(cmd2))
}

// Cmd1Hex returns cmd1 as two uppercase hex digits.
func (cmd Command) Cmd1Hex() string {
	return fmt.Sprintf("%02X", cmd.Cmd1())
}

// Cmd2Hex returns cmd2 as two uppercase hex digits.
func (cmd Command) Cmd2Hex() string {
	return fmt.Sprintf("%02X", cmd.Cmd2())
}

func (cmd Command) String() string {
	return cmd.Cmd1Hex() + cmd.Cmd2Hex()
}
