// Package server implements the JSON-RPC 2.0 tool server that exposes the
// raster operations over stdin/stdout.
//
// The protocol follows the MCP envelope: clients send one JSON request per
// line and receive one JSON response per line. Supported methods are
// initialize, notifications/initialized (acknowledged silently), tools/list,
// tools/call, and ping. Unknown methods return error code -32601, malformed
// parameters -32602, and tool execution failures -32000.
//
// # Tools
//
// The tool set covers the pipeline end to end: image_info, get_pixel,
// get_luminance, and get_box_average query a decoded buffer; resize_image
// and dither_image transform it and write an encoded result; export_ppm
// dumps the raw pixels for inspection.
//
// # State
//
// The only server state is the decode cache. Query tools read cached
// buffers directly; transforming tools clone before mutating, so repeated
// calls against the same source are independent.
package server
