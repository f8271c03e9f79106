// Package server implements an MCP (Model Context Protocol) server around the
// mask cutout pipeline.
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - mask_cutout: Cut the foreground out of an original using a mask and
//     write the PNG to a path or return it base64-encoded
//   - mask_summary: Report how many pixels a strategy would keep, their
//     bounding box and the average mask colour, without producing an image
//
// Images are given as http(s) URLs or local paths. Nothing is cached between
// calls.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
