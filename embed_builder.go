package blurplehook

import (
	"time"
)

// EmbedBuilder helps in constructing Embed objects. Setter methods overwrite
// the corresponding field and return the builder so calls can be chained. A
// malformed colour specification is recorded as a sticky error and surfaced by
// Build; the embed's colour stays unset in that case.
type EmbedBuilder struct {
	embed Embed
	err   error
}

// NewEmbedBuilder creates a new embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed: Embed{},
	}
}

// WithTitle sets the embed title
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// WithURL sets the embed URL
func (eb *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	eb.embed.URL = url
	return eb
}

// WithTimestamp sets the embed timestamp, formatted as RFC3339 in UTC. Passing
// the zero time captures time.Now at the call site, not at send time.
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	eb.embed.Timestamp = timestamp.UTC().Format(time.RFC3339)
	return eb
}

// WithColour normalises the colour specification and sets the embed colour.
// A malformed specification leaves the colour unset and is returned by Build.
func (eb *EmbedBuilder) WithColour(colour Colour) *EmbedBuilder {
	value, err := colour.normalise()
	if err != nil {
		if eb.err == nil {
			eb.err = err
		}
		return eb
	}

	eb.embed.Color = &value
	return eb
}

// WithColor sets the embed colour. It is the US spelling of WithColour.
func (eb *EmbedBuilder) WithColor(color Color) *EmbedBuilder {
	return eb.WithColour(color)
}

// WithFooter sets the embed footer. An empty iconURL leaves the icon unset.
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// WithImage sets the embed image
func (eb *EmbedBuilder) WithImage(url string) *EmbedBuilder {
	eb.embed.Image = NewEmbedImage(url)
	return eb
}

// WithThumbnail sets the embed thumbnail
func (eb *EmbedBuilder) WithThumbnail(url string) *EmbedBuilder {
	eb.embed.Thumbnail = NewEmbedThumbnail(url)
	return eb
}

// WithVideo sets the embed video
func (eb *EmbedBuilder) WithVideo(url string) *EmbedBuilder {
	eb.embed.Video = NewEmbedVideo(url)
	return eb
}

// WithProvider sets the embed provider
func (eb *EmbedBuilder) WithProvider(name, url string) *EmbedBuilder {
	eb.embed.Provider = NewEmbedProvider(name, url)
	return eb
}

// WithAuthor sets the embed author. Empty url and iconURL leave those fields unset.
func (eb *EmbedBuilder) WithAuthor(name, url, iconURL string) *EmbedBuilder {
	eb.embed.Author = NewEmbedAuthor(name, url, iconURL)
	return eb
}

// AddField appends a field to the embed, preserving insertion order
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, NewEmbedField(name, value, inline))
	return eb
}

// AddFields appends multiple fields to the embed, preserving input order
func (eb *EmbedBuilder) AddFields(fields ...EmbedField) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, fields...)
	return eb
}

// Err returns the first validation error recorded by a setter, or nil
func (eb *EmbedBuilder) Err() error {
	return eb.err
}

// Validate checks the accumulated embed against the limits the remote service
// enforces. It is advisory: Build does not call it.
func (eb *EmbedBuilder) Validate() error {
	return NewEmbedValidator().ValidateEmbed(eb.embed)
}

// Build returns the accumulated embed by value together with the first setter
// error. The returned embed does not share field storage with the builder, so
// mutating the builder afterwards cannot alter it.
func (eb *EmbedBuilder) Build() (Embed, error) {
	return eb.embed.clone(), eb.err
}
