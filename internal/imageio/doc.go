// Package imageio is the codec layer around the cutout pipeline.
//
// It decodes raw byte buffers and files into image.Image values, encodes
// results as PNG and writes them to disk. Decoders for PNG, JPEG, GIF, BMP,
// TIFF and WebP are registered on import.
//
// # Color Representation
//
// DescribeColor reports an 8-bit colour in two formats:
//   - Hex: 6-character format "#RRGGBB"
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return wrapped errors for unreadable files, undecodable data and
// encoder failures. They do not classify errors; the cutout package tags
// decoding failures for its callers.
package imageio
