package blurplehook

// Embed represents a single rich embed attached to a webhook message.
// Optional scalar fields are pointers so that "never set" is omitted from the
// wire payload while "set to the zero value" is still emitted.
type Embed struct {
	Title       string          `json:"title,omitempty"`       // Title of embed
	Description string          `json:"description,omitempty"` // Description of embed
	URL         string          `json:"url,omitempty"`         // URL of embed
	Timestamp   string          `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       *int            `json:"color,omitempty"`       // Color code of the embed, 0x000000..0xFFFFFF
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Video       *EmbedVideo     `json:"video,omitempty"`
	Provider    *EmbedProvider  `json:"provider,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"` // Array of embed field objects
}

// clone returns a copy of the embed whose Fields slice does not share backing
// storage with the receiver. Compound members are replaced wholesale by the
// builder, never mutated in place, so sharing those pointers is safe.
func (e Embed) clone() Embed {
	if e.Fields != nil {
		e.Fields = append([]EmbedField(nil), e.Fields...)
	}
	return e
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`               // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// NewEmbedFooter creates a new embed footer. An empty iconURL leaves the icon unset.
func NewEmbedFooter(text, iconURL string) *EmbedFooter {
	return &EmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

// EmbedImage represents the image of an embed.
type EmbedImage struct {
	URL string `json:"url"` // Source URL of image (only supports http(s) and attachments)
}

// NewEmbedImage creates a new embed image
func NewEmbedImage(url string) *EmbedImage {
	return &EmbedImage{URL: url}
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL string `json:"url"` // Source URL of thumbnail (only supports http(s) and attachments)
}

// NewEmbedThumbnail creates a new embed thumbnail
func NewEmbedThumbnail(url string) *EmbedThumbnail {
	return &EmbedThumbnail{URL: url}
}

// EmbedVideo represents the video of an embed.
type EmbedVideo struct {
	URL string `json:"url"` // Source URL of video
}

// NewEmbedVideo creates a new embed video
func NewEmbedVideo(url string) *EmbedVideo {
	return &EmbedVideo{URL: url}
}

// EmbedProvider represents the provider of an embed.
type EmbedProvider struct {
	Name string `json:"name,omitempty"` // Name of provider
	URL  string `json:"url,omitempty"`  // URL of provider
}

// NewEmbedProvider creates a new embed provider
func NewEmbedProvider(name, url string) *EmbedProvider {
	return &EmbedProvider{
		Name: name,
		URL:  url,
	}
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name"`               // Name of author
	URL     string `json:"url,omitempty"`      // URL of author (only supports http(s))
	IconURL string `json:"icon_url,omitempty"` // URL of author icon (only supports http(s) and attachments)
}

// NewEmbedAuthor creates a new embed author. Empty url and iconURL leave those
// fields unset.
func NewEmbedAuthor(name, url, iconURL string) *EmbedAuthor {
	return &EmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
}

// EmbedField represents a field in an embed.
type EmbedField struct {
	Name   string `json:"name"`   // Name of the field
	Value  string `json:"value"`  // Value of the field
	Inline bool   `json:"inline"` // Whether or not this field should display inline
}

// NewEmbedField creates a new embed field
func NewEmbedField(name, value string, inline bool) EmbedField {
	return EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}
