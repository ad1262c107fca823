package blurplehook

// Message represents the JSON payload sent to a webhook endpoint. Optional
// scalar fields are pointers: a nil pointer is omitted from the wire payload,
// while a pointer to the empty string is emitted as "". Embed order is
// wire-significant and matches insertion order.
type Message struct {
	Content   *string `json:"content,omitempty"`    // Message content (text)
	Username  *string `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL *string `json:"avatar_url,omitempty"` // Override the default webhook avatar
	Embeds    []Embed `json:"embeds,omitempty"`     // Array of embed objects
}
