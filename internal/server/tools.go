package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that reads a photo.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Loading
		{
			Name:        "image_load",
			Description: "Load an image file with its EXIF orientation applied and return its display dimensions, format and orientation. Images without an orientation tag are treated as rotated 90 degrees clockwise.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_load_asset",
			Description: "Load an image bundled in the assets directory as-is (no orientation applied) and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Slash-separated asset name relative to the assets directory, e.g. styles/style0.png",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_blank",
			Description: "Create a blank image of the given size, optionally filled with a colour, and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill colour as #RRGGBB. Default is transparent black",
					},
				},
				"required": []string{"width", "height"},
			},
		},

		// Orientation
		{
			Name:        "image_orientation_code",
			Description: "Convert a clockwise rotation in degrees plus a mirror flag into an EXIF orientation code.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"degrees": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{0, 90, 180, 270},
						"description": "Clockwise rotation in degrees",
					},
					"mirrored": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether the image is mirrored. Default false",
						"default":     false,
					},
				},
				"required": []string{"degrees"},
			},
		},
		{
			Name:        "image_orientation_transform",
			Description: "Return the 2x3 affine matrix [a, b, c, d, e, f] that maps a raw image into display orientation for an EXIF orientation code.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "integer",
						"description": "EXIF orientation code (0-8)",
					},
				},
				"required": []string{"code"},
			},
		},
		{
			Name:        "image_set_orientation",
			Description: "Write the EXIF orientation tag of a JPEG file in place.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"code": map[string]interface{}{
						"type":        "integer",
						"description": "EXIF orientation code (1-8)",
					},
				},
				"required": []string{"path", "code"},
			},
		},

		// Model input and output
		{
			Name:        "image_scale",
			Description: "Stretch an orientation-corrected image to exactly the given size with bilinear filtering and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_to_tensor",
			Description: "Scale an orientation-corrected image and convert it into a normalized float32 RGB tensor ((value - mean) / std, row-major). The tensor is returned as base64-encoded little-endian float32 bytes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Tensor width",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Tensor height",
					},
					"mean": map[string]interface{}{
						"type":        "number",
						"description": "Value subtracted from each channel byte. Default 0",
						"default":     0.0,
					},
					"std": map[string]interface{}{
						"type":        "number",
						"description": "Divisor applied after subtracting the mean, e.g. 255 for [0,1] input",
					},
				},
				"required": []string{"path", "width", "height", "std"},
			},
		},
		{
			Name:        "image_from_tensor",
			Description: "Convert a model output tensor shaped [1][rows][cols][3] with values in [0,1] into an image. Tensor position [0][x][y] becomes pixel column y, row x.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tensor": map[string]interface{}{
						"type":        "array",
						"description": "Nested float array of shape [1][rows][cols][channels]",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output image width",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output image height",
					},
					"save_to_album": map[string]interface{}{
						"type":        "boolean",
						"description": "Also save the result to the photo album. Default false",
						"default":     false,
					},
				},
				"required": []string{"tensor", "width", "height"},
			},
		},
		{
			Name:        "image_save_album",
			Description: "Save an orientation-corrected image to the photo album as a full-quality JPEG and return the saved path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate of the orientation-corrected image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
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
			Name:        "image_ocr",
			Description: "Extract text from the orientation-corrected image using OCR, with word bounding boxes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Defaults to the server's configured language",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
