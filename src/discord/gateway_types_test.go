package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketDispatchData(t *testing.T) {
	frame := `{"op":0,"t":"CHANNEL_CREATE","s":3,"d":` + textChannel + `}`

	packet, err := Decode[Packet](strings.NewReader(frame))
	require.NoError(t, err)
	assert.Equal(t, OpDispatch, packet.Op)
	require.NotNil(t, packet.S)
	assert.Equal(t, int64(3), *packet.S)

	data, ok, err := packet.Data()
	require.NoError(t, err)
	require.True(t, ok)

	channel, isChannel := data.(Channel)
	require.True(t, isChannel)
	assert.Equal(t, Snowflake("41771983423143937"), channel.ID)
	assert.True(t, channel.Topic.IsSpecified())
	assert.False(t, channel.Bitrate.IsSpecified())
}

func TestPacketWithoutDispatchData(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{"hello", `{"op":10,"t":null,"s":null,"d":{"heartbeat_interval":41250}}`},
		{"heartbeat ack", `{"op":11,"t":null,"s":null,"d":null}`},
		{"unmodelled event", `{"op":0,"t":"MESSAGE_CREATE","s":7,"d":{"id":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet, err := Decode[Packet](strings.NewReader(tt.frame))
			require.NoError(t, err)

			data, ok, err := packet.Data()
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, data)
		})
	}
}

func TestPacketDispatchDataMismatch(t *testing.T) {
	frame := `{"op":0,"t":"USER_UPDATE","s":1,"d":{"id":5}}`

	packet, err := Decode[Packet](strings.NewReader(frame))
	require.NoError(t, err)

	_, ok, err := packet.Data()
	assert.False(t, ok)
	assert.ErrorContains(t, err, "could not unmarshal discord.User")
}
