// Package types holds the Telegram Bot API wire types and the scalar codecs
// that need exact round-tripping through JSON: packed RGB colors, the
// chat identifier union and input-file references.
package types
