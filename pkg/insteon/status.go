package insteon

import "strings"

// HubStatus is the decoded content of the hub's receive buffer: the last
// command sent through the hub and the standard message received after it.
type HubStatus struct {
	LastCommand     string `json:"last_command"`
	LastCommandCmd1 string `json:"last_command_cmd1"`
	LastCommandCmd2 string `json:"last_command_cmd2"`
	FullResponse    string `json:"full_response"`
	TargetDevice    string `json:"target_device,omitempty"`
	SourceDevice    string `json:"source_device,omitempty"`
	Cmd1            string `json:"cmd1,omitempty"`
	Cmd2            string `json:"cmd2,omitempty"`
}

const (
	receivedPrefix = "0250"
	// 0262 + device + flags + cmd1 + cmd2
	sentFrameLength = 16
	// 0250 + from + to + flags + cmd1 + cmd2
	receivedFrameLength = 22
)

// ParseBuffer decodes a hex buffer as returned by the hub's buffstatus page.
func ParseBuffer(buffer string) (*HubStatus, error) {
	buf := strings.ToUpper(strings.TrimSpace(buffer))

	idx := lastByteIndex(buf, sendPrefix)
	if idx < 0 || len(buf) < idx+sentFrameLength {
		return nil, ErrNoHubResponse
	}
	sent := buf[idx : idx+sentFrameLength]

	status := &HubStatus{
		LastCommand:     sent,
		LastCommandCmd1: sent[12:14],
		LastCommandCmd2: sent[14:16],
		FullResponse:    buf,
	}

	rest := buf[idx+sentFrameLength:]
	r := byteIndex(rest, receivedPrefix)
	if r < 0 || len(rest) < r+receivedFrameLength {
		return status, nil
	}
	recv := rest[r : r+receivedFrameLength]

	status.SourceDevice = recv[4:10]
	status.TargetDevice = recv[10:16]
	status.Cmd1 = recv[18:20]
	status.Cmd2 = recv[20:22]

	return status, nil
}

// byteIndex is strings.Index restricted to matches on a byte boundary of
// the hex text, so an address such as 10262A is not read as a frame start.
func byteIndex(s, sub string) int {
	for off := 0; off < len(s); {
		i := strings.Index(s[off:], sub)
		if i < 0 {
			return -1
		}
		if (off+i)%2 == 0 {
			return off + i
		}
		off += i + 1
	}
	return -1
}

// lastByteIndex is the byte-aligned counterpart of strings.LastIndex.
func lastByteIndex(s, sub string) int {
	end := len(s)
	for end > 0 {
		i := strings.LastIndex(s[:end], sub)
		if i < 0 {
			return -1
		}
		if i%2 == 0 {
			return i
		}
		end = i + len(sub) - 1
	}
	return -1
}
