// Package color implements the color value model used by color-mod()
// resolution: three interconvertible colorspaces sharing a hue, channel
// adjustment, blending, contrast and CSS stringification.
package color

// Colorspace of a color value.
// ENUM(rgb, hsl, hwb)
type Space int

// Channel identifies a single adjustable channel of a color. Channels
// live on a 0-100 scale except Hue which is an angle in degrees.
type Channel int

const (
	ChannelAlpha Channel = iota
	ChannelRed
	ChannelGreen
	ChannelBlue
	ChannelHue
	ChannelSaturation
	ChannelLightness
	ChannelWhiteness
	ChannelBlackness
)
