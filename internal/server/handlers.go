package server

import (
	"encoding/json"
	"fmt"

	"github.com/marengo/rasterkit/internal/codec"
	"github.com/marengo/rasterkit/internal/prefilter"
	"github.com/marengo/rasterkit/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "resize_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in the content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_info":
		return s.handleImageInfo(args)
	case "get_pixel":
		return s.handleGetPixel(args)
	case "get_luminance":
		return s.handleGetLuminance(args)
	case "get_box_average":
		return s.handleGetBoxAverage(args)
	case "resize_image":
		return s.handleResizeImage(args)
	case "dither_image":
		return s.handleDitherImage(args)
	case "export_ppm":
		return s.handleExportPPM(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Query Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.Info(a.Path)
}

type pixelArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// PixelResult reports the raw channel samples at one coordinate.
type PixelResult struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Samples []uint8 `json:"samples"`
	Hex     string  `json:"hex,omitempty"` // "#RRGGBB", 3-channel buffers only
}

func (s *Server) handleGetPixel(args json.RawMessage) (interface{}, error) {
	var a pixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	px, err := b.Pixel(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	res := &PixelResult{X: a.X, Y: a.Y, Samples: px}
	if len(px) == 3 {
		res.Hex = fmt.Sprintf("#%02X%02X%02X", px[0], px[1], px[2])
	}
	return res, nil
}

// LuminanceResult reports the approximate luminance at one coordinate.
type LuminanceResult struct {
	X         int   `json:"x"`
	Y         int   `json:"y"`
	Luminance uint8 `json:"luminance"`
}

func (s *Server) handleGetLuminance(args json.RawMessage) (interface{}, error) {
	var a pixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	lum, err := b.Luminance(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &LuminanceResult{X: a.X, Y: a.Y, Luminance: lum}, nil
}

type boxAverageArgs struct {
	Path    string `json:"path"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	BoxSize int    `json:"box_size"`
}

// BoxAverageResult reports the per-channel mean over a sampling window.
type BoxAverageResult struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	BoxSize int     `json:"box_size"`
	Average []uint8 `json:"average"`
}

func (s *Server) handleGetBoxAverage(args json.RawMessage) (interface{}, error) {
	var a boxAverageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BoxSize == 0 {
		a.BoxSize = 3
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	avg, err := b.Average(a.X, a.Y, a.BoxSize)
	if err != nil {
		return nil, err
	}
	return &BoxAverageResult{X: a.X, Y: a.Y, BoxSize: a.BoxSize, Average: avg}, nil
}

// === Transform Handlers ===

// TransformResult reports where a transformed image was written and its
// final dimensions.
type TransformResult struct {
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type resizeArgs struct {
	Path     string `json:"path"`
	NewWidth int    `json:"new_width"`
	Output   string `json:"output"`
	Quality  int    `json:"quality"`
}

func (s *Server) handleResizeImage(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Quality == 0 {
		a.Quality = 90
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	resized, err := b.Resize(a.NewWidth)
	if err != nil {
		return nil, err
	}
	if err := codec.EncodeFile(a.Output, resized, a.Quality); err != nil {
		return nil, err
	}
	return &TransformResult{Output: a.Output, Width: resized.Width(), Height: resized.Height()}, nil
}

type ditherArgs struct {
	Path    string   `json:"path"`
	Mode    string   `json:"mode"`
	Output  string   `json:"output"`
	Quality int      `json:"quality"`
	Palette []string `json:"palette,omitempty"`

	// Optional pre-dither conditioning, applied in this order.
	BlurRadius    float64 `json:"blur_radius,omitempty"`
	Sharpen       bool    `json:"sharpen,omitempty"`
	UnsharpRadius float64 `json:"unsharp_radius,omitempty"`
	UnsharpAmount float64 `json:"unsharp_amount,omitempty"`
}

func (s *Server) handleDitherImage(args json.RawMessage) (interface{}, error) {
	var a ditherArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Quality == 0 {
		a.Quality = 90
	}

	cached, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	// Dithering mutates in place; never touch the cached copy.
	b := cached.Clone()

	if a.BlurRadius > 0 {
		if b, err = prefilter.Blur(b, a.BlurRadius); err != nil {
			return nil, err
		}
	}
	if a.Sharpen {
		if b, err = prefilter.Sharpen(b); err != nil {
			return nil, err
		}
	}
	if a.UnsharpRadius > 0 {
		if b, err = prefilter.Unsharp(b, a.UnsharpRadius, a.UnsharpAmount); err != nil {
			return nil, err
		}
	}

	switch a.Mode {
	case "", "mono":
		b.DitherMono()
	case "palette":
		pal := raster.DefaultPalette
		if len(a.Palette) > 0 {
			if pal, err = raster.ParsePalette(a.Palette); err != nil {
				return nil, err
			}
		}
		if err := b.DitherPalette(pal); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown dither mode: %s", a.Mode)
	}

	if err := codec.EncodeFile(a.Output, b, a.Quality); err != nil {
		return nil, err
	}
	return &TransformResult{Output: a.Output, Width: b.Width(), Height: b.Height()}, nil
}

type exportPPMArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

func (s *Server) handleExportPPM(args json.RawMessage) (interface{}, error) {
	var a exportPPMArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := codec.SavePPM(a.Output, b); err != nil {
		return nil, err
	}
	return &TransformResult{Output: a.Output, Width: b.Width(), Height: b.Height()}, nil
}
