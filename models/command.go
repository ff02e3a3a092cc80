package models

// CommandType identifies the kind of outbound instruction handed to the
// messaging transport.
type CommandType string

const (
	CommandReply     CommandType = "reply"
	CommandSendMedia CommandType = "send_media"
	CommandReact     CommandType = "react"
)

// OutboundCommand describes one send the transport must perform in response
// to the just-processed inbound message.
type OutboundCommand struct {
	Type     CommandType `json:"type"`
	Text     string      `json:"text,omitempty"`
	MediaRef string      `json:"mediaRef,omitempty"`
	Caption  string      `json:"caption,omitempty"`
	Emoji    string      `json:"emoji,omitempty"`
}

// Reply builds a plain text reply command.
func Reply(text string) OutboundCommand {
	return OutboundCommand{Type: CommandReply, Text: text}
}

// SendMedia builds a media send command with a caption. The media reference
// is opaque here; the transport resolves it to an actual asset.
func SendMedia(mediaRef, caption string) OutboundCommand {
	return OutboundCommand{Type: CommandSendMedia, MediaRef: mediaRef, Caption: caption}
}

// React builds an emoji reaction command targeting the inbound message.
func React(emoji string) OutboundCommand {
	return OutboundCommand{Type: CommandReact, Emoji: emoji}
}
