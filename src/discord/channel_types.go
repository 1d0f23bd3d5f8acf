package discord

import (
	"personal/discord_wire/src/optional"
)

// Snowflake is a vendor ID. It travels as a JSON string.
type Snowflake string

type ChannelType int

const (
	ChannelTypeGuildText          ChannelType = 0
	ChannelTypeDM                 ChannelType = 1
	ChannelTypeGuildVoice         ChannelType = 2
	ChannelTypeGroupDM            ChannelType = 3
	ChannelTypeGuildCategory      ChannelType = 4
	ChannelTypeGuildAnnouncement  ChannelType = 5
	ChannelTypeAnnouncementThread ChannelType = 10
	ChannelTypePublicThread       ChannelType = 11
	ChannelTypePrivateThread      ChannelType = 12
	ChannelTypeGuildStageVoice    ChannelType = 13
	ChannelTypeGuildDirectory     ChannelType = 14
	ChannelTypeGuildForum         ChannelType = 15
	ChannelTypeGuildMedia         ChannelType = 16
)

type Overwrite struct {
	ID    Snowflake `json:"id"`
	Type  int       `json:"type"`
	Allow string    `json:"allow"`
	Deny  string    `json:"deny"`
}

type ThreadMetadata struct {
	Archived            bool                       `json:"archived"`
	AutoArchiveDuration int                        `json:"auto_archive_duration"`
	ArchiveTimestamp    string                     `json:"archive_timestamp"`
	Locked              bool                       `json:"locked"`
	Invitable           optional.Optional[bool]    `json:"invitable,omitzero"`
	CreateTimestamp     optional.Optional[*string] `json:"create_timestamp,omitzero"`
}

type ThreadMember struct {
	ID            optional.Optional[Snowflake] `json:"id,omitzero"`
	UserID        optional.Optional[Snowflake] `json:"user_id,omitzero"`
	JoinTimestamp string                       `json:"join_timestamp"`
	Flags         int                          `json:"flags"`
}

type Tag struct {
	ID        Snowflake  `json:"id"`
	Name      string     `json:"name"`
	Moderated bool       `json:"moderated"`
	EmojiID   *Snowflake `json:"emoji_id"`
	EmojiName *string    `json:"emoji_name"`
}

type DefaultReaction struct {
	EmojiID   *Snowflake `json:"emoji_id"`
	EmojiName *string    `json:"emoji_name"`
}

type User struct {
	ID            Snowflake                  `json:"id"`
	Username      string                     `json:"username"`
	Discriminator string                     `json:"discriminator"`
	GlobalName    *string                    `json:"global_name"`
	Avatar        *string                    `json:"avatar"`
	Bot           optional.Optional[bool]    `json:"bot,omitzero"`
	System        optional.Optional[bool]    `json:"system,omitzero"`
	MFAEnabled    optional.Optional[bool]    `json:"mfa_enabled,omitzero"`
	Banner        optional.Optional[*string] `json:"banner,omitzero"`
	AccentColor   optional.Optional[*int]    `json:"accent_color,omitzero"`
	Locale        optional.Optional[string]  `json:"locale,omitzero"`
	Verified      optional.Optional[bool]    `json:"verified,omitzero"`
	Email         optional.Optional[*string] `json:"email,omitzero"`
	Flags         optional.Optional[int]     `json:"flags,omitzero"`
	PremiumType   optional.Optional[int]     `json:"premium_type,omitzero"`
	PublicFlags   optional.Optional[int]     `json:"public_flags,omitzero"`
}

// Channel mirrors the vendor channel object. Fields the vendor may leave out
// are Optional; fields it may also send as null are Optional pointers.
type Channel struct {
	ID                            Snowflake                           `json:"id"`
	Type                          ChannelType                         `json:"type"`
	GuildID                       optional.Optional[Snowflake]        `json:"guild_id,omitzero"`
	Position                      optional.Optional[int]              `json:"position,omitzero"`
	PermissionOverwrites          optional.Optional[[]Overwrite]      `json:"permission_overwrites,omitzero"`
	Name                          optional.Optional[*string]          `json:"name,omitzero"`
	Topic                         optional.Optional[*string]          `json:"topic,omitzero"`
	NSFW                          optional.Optional[bool]             `json:"nsfw,omitzero"`
	LastMessageID                 optional.Optional[*Snowflake]       `json:"last_message_id,omitzero"`
	Bitrate                       optional.Optional[int]              `json:"bitrate,omitzero"`
	UserLimit                     optional.Optional[int]              `json:"user_limit,omitzero"`
	RateLimitPerUser              optional.Optional[int]              `json:"rate_limit_per_user,omitzero"`
	Recipients                    optional.Optional[[]User]           `json:"recipients,omitzero"`
	Icon                          optional.Optional[*string]          `json:"icon,omitzero"`
	OwnerID                       optional.Optional[Snowflake]        `json:"owner_id,omitzero"`
	ApplicationID                 optional.Optional[Snowflake]        `json:"application_id,omitzero"`
	Managed                       optional.Optional[bool]             `json:"managed,omitzero"`
	ParentID                      optional.Optional[*Snowflake]       `json:"parent_id,omitzero"`
	LastPinTimestamp              optional.Optional[*string]          `json:"last_pin_timestamp,omitzero"` // ISO8601
	RTCRegion                     optional.Optional[*string]          `json:"rtc_region,omitzero"`
	VideoQualityMode              optional.Optional[int]              `json:"video_quality_mode,omitzero"`
	MessageCount                  optional.Optional[int]              `json:"message_count,omitzero"`
	MemberCount                   optional.Optional[int]              `json:"member_count,omitzero"`
	ThreadMetadata                optional.Optional[ThreadMetadata]   `json:"thread_metadata,omitzero"`
	Member                        optional.Optional[ThreadMember]     `json:"member,omitzero"`
	DefaultAutoArchiveDuration    optional.Optional[int]              `json:"default_auto_archive_duration,omitzero"`
	Permissions                   optional.Optional[string]           `json:"permissions,omitzero"`
	Flags                         optional.Optional[int]              `json:"flags,omitzero"`
	TotalMessageSent              optional.Optional[int]              `json:"total_message_sent,omitzero"`
	AvailableTags                 optional.Optional[[]Tag]            `json:"available_tags,omitzero"`
	AppliedTags                   optional.Optional[[]Snowflake]      `json:"applied_tags,omitzero"`
	DefaultReactionEmoji          optional.Optional[*DefaultReaction] `json:"default_reaction_emoji,omitzero"`
	DefaultThreadRateLimitPerUser optional.Optional[int]              `json:"default_thread_rate_limit_per_user,omitzero"`
	DefaultSortOrder              optional.Optional[*int]             `json:"default_sort_order,omitzero"`
	DefaultForumLayout            optional.Optional[int]              `json:"default_forum_layout,omitzero"`
}

// IsThread reports whether the channel type is one of the thread types.
func (c Channel) IsThread() bool {
	switch c.Type {
	case ChannelTypeAnnouncementThread, ChannelTypePublicThread, ChannelTypePrivateThread:
		return true
	}
	return false
}

// ModifyChannelParams is the body of a modify-channel request. Only the
// specified fields are sent; a specified nil pointer clears the field on the
// vendor side.
type ModifyChannelParams struct {
	Name                          optional.Optional[string]           `json:"name,omitzero"`
	Type                          optional.Optional[ChannelType]      `json:"type,omitzero"`
	Position                      optional.Optional[*int]             `json:"position,omitzero"`
	Topic                         optional.Optional[*string]          `json:"topic,omitzero"`
	NSFW                          optional.Optional[*bool]            `json:"nsfw,omitzero"`
	RateLimitPerUser              optional.Optional[*int]             `json:"rate_limit_per_user,omitzero"`
	Bitrate                       optional.Optional[*int]             `json:"bitrate,omitzero"`
	UserLimit                     optional.Optional[*int]             `json:"user_limit,omitzero"`
	PermissionOverwrites          optional.Optional[[]Overwrite]      `json:"permission_overwrites,omitzero"`
	ParentID                      optional.Optional[*Snowflake]       `json:"parent_id,omitzero"`
	RTCRegion                     optional.Optional[*string]          `json:"rtc_region,omitzero"`
	VideoQualityMode              optional.Optional[*int]             `json:"video_quality_mode,omitzero"`
	DefaultAutoArchiveDuration    optional.Optional[*int]             `json:"default_auto_archive_duration,omitzero"`
	Flags                         optional.Optional[int]              `json:"flags,omitzero"`
	AvailableTags                 optional.Optional[[]Tag]            `json:"available_tags,omitzero"`
	DefaultReactionEmoji          optional.Optional[*DefaultReaction] `json:"default_reaction_emoji,omitzero"`
	DefaultThreadRateLimitPerUser optional.Optional[int]              `json:"default_thread_rate_limit_per_user,omitzero"`
	DefaultSortOrder              optional.Optional[*int]             `json:"default_sort_order,omitzero"`
	DefaultForumLayout            optional.Optional[int]              `json:"default_forum_layout,omitzero"`
}
