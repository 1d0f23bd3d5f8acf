package discord

import (
	"strings"
	"testing"

	"personal/discord_wire/src/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textChannel = `{
	"id": "41771983423143937",
	"guild_id": "41771983423143937",
	"name": "general",
	"type": 0,
	"position": 6,
	"permission_overwrites": [],
	"rate_limit_per_user": 2,
	"nsfw": true,
	"topic": null,
	"last_message_id": "155117677105512449",
	"parent_id": "399942396007890945"
}`

func TestDecodeChannel(t *testing.T) {
	channel, err := Decode[Channel](strings.NewReader(textChannel))
	require.NoError(t, err)

	assert.Equal(t, Snowflake("41771983423143937"), channel.ID)
	assert.Equal(t, ChannelTypeGuildText, channel.Type)
	assert.Equal(t, "general", *channel.Name.Value())
	assert.Equal(t, 6, channel.Position.Value())
	assert.True(t, channel.NSFW.Value())

	// Sent as null: specified, but empty.
	assert.True(t, channel.Topic.IsSpecified())
	assert.Nil(t, channel.Topic.Value())

	// Sent as an empty array: specified and non-nil.
	assert.True(t, channel.PermissionOverwrites.IsSpecified())
	assert.Empty(t, channel.PermissionOverwrites.Value())

	// Not sent at all.
	assert.False(t, channel.Bitrate.IsSpecified())
	assert.False(t, channel.ThreadMetadata.IsSpecified())
	assert.False(t, channel.IsThread())
}

func TestChannelRoundTripKeepsAbsentFieldsAbsent(t *testing.T) {
	channel, err := Decode[Channel](strings.NewReader(textChannel))
	require.NoError(t, err)

	out, err := Encode(channel)
	require.NoError(t, err)
	assert.JSONEq(t, textChannel, string(out))
}

func TestDecodeThread(t *testing.T) {
	payload := `{
		"id": "1",
		"type": 11,
		"thread_metadata": {
			"archived": false,
			"auto_archive_duration": 1440,
			"archive_timestamp": "2021-04-12T23:40:39.855793+00:00",
			"locked": false
		}
	}`
	channel, err := Decode[Channel](strings.NewReader(payload))
	require.NoError(t, err)

	assert.True(t, channel.IsThread())
	meta := channel.ThreadMetadata.Value()
	assert.Equal(t, 1440, meta.AutoArchiveDuration)
	assert.False(t, meta.Invitable.IsSpecified())
}

func TestDecodeRejectsMalformedPayload(t *testing.T) {
	_, err := Decode[Channel](strings.NewReader(`{"id": 12}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discord: could not unmarshal discord.Channel")
}

func TestModifyChannelParamsOnlySendsSpecifiedFields(t *testing.T) {
	params := ModifyChannelParams{
		Name:     optional.Some("announcements"),
		Topic:    optional.Some[*string](nil),
		ParentID: optional.Some[*Snowflake](nil),
	}

	out, err := Encode(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"announcements","topic":null,"parent_id":null}`, string(out))
	assert.Equal(t, []string{"name", "topic", "parent_id"}, optional.SpecifiedFields(params))

	out, err = Encode(ModifyChannelParams{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestDecodeUser(t *testing.T) {
	payload := `{
		"id": "80351110224678912",
		"username": "nelly",
		"discriminator": "1337",
		"global_name": null,
		"avatar": "8342729096ea3675442027381ff50dfe",
		"banner": null,
		"verified": true,
		"flags": 64
	}`
	user, err := Decode[User](strings.NewReader(payload))
	require.NoError(t, err)

	assert.Nil(t, user.GlobalName)
	require.NotNil(t, user.Avatar)
	assert.True(t, user.Banner.IsSpecified())
	assert.Nil(t, user.Banner.Value())
	assert.False(t, user.Email.IsSpecified())
	assert.Equal(t, 64, user.Flags.ValueOr(0))
	assert.Equal(t, []string{"banner", "verified", "flags"}, optional.SpecifiedFields(user))
}
