package server

// Tool represents a tool definition exposed through tools/list.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// ToolDefinitions returns all available tools.
func ToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, channel count, format, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "get_pixel",
			Description: "Get the raw channel samples at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "get_luminance",
			Description: "Get the approximate perceptual luminance (0-255) at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "get_box_average",
			Description: "Get the per-channel average over a square window. The window is moved back inside the image if it would overrun the right or bottom edge.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Window origin X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Window origin Y coordinate (0-based)",
					},
					"box_size": map[string]interface{}{
						"type":        "integer",
						"description": "Window edge length in pixels. Default 3",
						"default":     3,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "resize_image",
			Description: "Resize an image to a new width (height scales by the same factor) and write the result. Shrinking uses streaming area averaging, expanding uses nearest neighbor.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"new_width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output file path; format derives from the extension",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 0-100 (clamped). Default 90",
						"default":     90,
					},
				},
				"required": []string{"path", "new_width", "output"},
			},
		},
		{
			Name:        "dither_image",
			Description: "Apply Floyd-Steinberg error diffusion and write the result. Mode 'mono' produces black-and-white output; mode 'palette' quantizes to a 7-color palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"mono", "palette"},
						"description": "Dithering variant. Default mono",
						"default":     "mono",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output file path; format derives from the extension",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 0-100 (clamped). Default 90",
						"default":     90,
					},
					"palette": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Optional 7 hex colors (\"#rrggbb\") replacing the default palette for mode 'palette'",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur radius applied before dithering",
					},
					"sharpen": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply a sharpening kernel before dithering",
					},
					"unsharp_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional unsharp mask radius applied before dithering",
					},
					"unsharp_amount": map[string]interface{}{
						"type":        "number",
						"description": "Unsharp mask amount; used with unsharp_radius",
					},
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "export_ppm",
			Description: "Dump the decoded pixels to a binary PPM (P6) file for debugging. Paths ending in .gz are gzip-compressed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output .ppm or .ppm.gz path",
					},
				},
				"required": []string{"path", "output"},
			},
		},
	}
}
