// Package server implements the MCP (Model Context Protocol) server that
// prepares photos for on-device style-transfer models.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Loading:
//   - image_load: Decode with EXIF orientation applied, report metadata
//   - image_load_asset: Decode a bundled asset as-is
//   - image_blank: Create a filled canvas
//
// Orientation:
//   - image_orientation_code: Degrees and mirror flag to EXIF code
//   - image_orientation_transform: EXIF code to affine matrix
//   - image_set_orientation: Rewrite the EXIF tag of a JPEG
//
// Model input and output:
//   - image_scale: Stretch to an exact size
//   - image_to_tensor: Normalized float32 RGB tensor
//   - image_from_tensor: Model output back to pixels
//   - image_save_album: Full-quality JPEG into the album directory
//
// Inspection:
//   - image_sample_color: Pixel colour after orientation
//   - image_ocr: Text recognition
//
// # Image Caching
//
// Orientation-corrected images are cached by path for the lifetime of the
// process. image_set_orientation evicts the file it rewrites.
//
// # Error Handling
//
// Tool failures are JSON-RPC errors with code -32000 and the Go error string
// as data.
package server
