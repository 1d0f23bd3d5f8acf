package discord

import (
	"encoding/json"
	"fmt"
)

type Opcode int

// 0	Dispatch	Receive	An event was dispatched.
// 1	Heartbeat	Send/Receive	Fired periodically by the client to keep the connection alive.
// 2	Identify	Send	Starts a new session during the initial handshake.
// 3	Presence Update	Send	Update the client's presence.
// 4	Voice State Update	Send	Used to join/leave or move between voice channels.
// 6	Resume	Send	Resume a previous session that was disconnected.
// 7	Reconnect	Receive	You should attempt to reconnect and resume immediately.
// 8	Request Guild Members	Send	Request information about offline guild members in a large guild.
// 9	Invalid Session	Receive	The session has been invalidated. You should reconnect and identify/resume accordingly.
// 10	Hello	Receive	Sent immediately after connecting, contains the heartbeat_interval to use.
// 11	Heartbeat ACK	Receive	Sent in response to receiving a heartbeat to acknowledge that it has been received.

const (
	OpDispatch            Opcode = 0
	OpHeartbeat           Opcode = 1
	OpIdentify            Opcode = 2
	OpPresenceUpdate      Opcode = 3
	OpVoiceStateUpdate    Opcode = 4
	OpResume              Opcode = 6
	OpReconnect           Opcode = 7
	OpRequestGuildMembers Opcode = 8
	OpInvalidSession      Opcode = 9
	OpHello               Opcode = 10
	OpHeartbeatACK        Opcode = 11
)

// Packet is the gateway frame envelope. T and S are null on every opcode
// except Dispatch.
type Packet struct {
	Op Opcode          `json:"op"`
	T  *string         `json:"t"`
	D  json.RawMessage `json:"d"`
	S  *int64          `json:"s"`
}

// dispatchTypes maps the dispatch events whose data this package models.
var dispatchTypes = map[string]func([]byte) (any, error){
	"CHANNEL_CREATE": decodeData[Channel],
	"CHANNEL_UPDATE": decodeData[Channel],
	"CHANNEL_DELETE": decodeData[Channel],
	"THREAD_CREATE":  decodeData[Channel],
	"THREAD_UPDATE":  decodeData[Channel],
	"USER_UPDATE":    decodeData[User],
}

func decodeData[T any](data []byte) (any, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("discord: could not unmarshal %T: %w", v, err)
	}
	return v, nil
}

// Data decodes the payload of a dispatch packet. ok is false for opcodes other
// than Dispatch and for events without a modelled payload.
func (p Packet) Data() (v any, ok bool, err error) {
	if p.Op != OpDispatch || p.T == nil {
		return nil, false, nil
	}
	decode, known := dispatchTypes[*p.T]
	if !known {
		return nil, false, nil
	}
	v, err = decode(p.D)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
