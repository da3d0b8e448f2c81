package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/ironsheep/tensorprep-mcp/internal/imaging"
	"github.com/ironsheep/tensorprep-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_to_tensor").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ImageResult carries a generated image back to the client.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SavedPath   string `json:"saved_path,omitempty"`
}

// OrientationResult describes an EXIF orientation code.
type OrientationResult struct {
	Code    imaging.OrientationCode `json:"code"`
	Name    string                  `json:"name"`
	Path    string                  `json:"path,omitempty"`
	Matrix  *[6]float64             `json:"matrix,omitempty"`
	Warning string                  `json:"warning,omitempty"`
}

// TensorResult is a normalized tensor encoded for transport.
type TensorResult struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Channels   int    `json:"channels"`
	Shape      []int  `json:"shape"`
	Length     int    `json:"length"`
	DType      string `json:"dtype"`
	ByteOrder  string `json:"byte_order"`
	DataBase64 string `json:"data_base64"`
}

// SaveResult reports where an album save landed.
type SaveResult struct {
	SavedPath string `json:"saved_path"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
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

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads orientation-corrected images from cache as needed
//  4. Calls the appropriate imaging/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Loading
	case "image_load":
		return s.handleImageLoad(args)
	case "image_load_asset":
		return s.handleImageLoadAsset(args)
	case "image_blank":
		return s.handleImageBlank(args)

	// Orientation
	case "image_orientation_code":
		return s.handleOrientationCode(args)
	case "image_orientation_transform":
		return s.handleOrientationTransform(args)
	case "image_set_orientation":
		return s.handleSetOrientation(args)

	// Model input and output
	case "image_scale":
		return s.handleImageScale(args)
	case "image_to_tensor":
		return s.handleImageToTensor(args)
	case "image_from_tensor":
		return s.handleImageFromTensor(args)
	case "image_save_album":
		return s.handleSaveAlbum(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_ocr":
		return s.handleImageOCR(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// encodeImageResult renders img as base64 PNG.
func encodeImageResult(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// === Loading Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageLoadAssetArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageLoadAsset(args json.RawMessage) (interface{}, error) {
	var a imageLoadAssetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.LoadAsset(s.assets, a.Name)
	if err != nil {
		return nil, err
	}
	return encodeImageResult(img)
}

type imageBlankArgs struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
}

func (s *Server) handleImageBlank(args json.RawMessage) (interface{}, error) {
	var a imageBlankArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.NewFilled(a.Width, a.Height, a.Color)
	if err != nil {
		return nil, err
	}
	return encodeImageResult(img)
}

// === Orientation Handlers ===

type orientationCodeArgs struct {
	Degrees  int  `json:"degrees"`
	Mirrored bool `json:"mirrored"`
}

func (s *Server) handleOrientationCode(args json.RawMessage) (interface{}, error) {
	var a orientationCodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	code, err := imaging.OrientationFromDegrees(a.Degrees, a.Mirrored)
	if err != nil {
		return nil, err
	}
	return &OrientationResult{Code: code, Name: code.String()}, nil
}

type orientationTransformArgs struct {
	Code int `json:"code"`
}

func (s *Server) handleOrientationTransform(args json.RawMessage) (interface{}, error) {
	var a orientationTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	code := imaging.OrientationCode(a.Code)
	result := &OrientationResult{Code: code, Name: code.String()}

	// Unknown codes still yield the identity so callers can proceed.
	m, err := imaging.TransformForOrientation(code)
	if err != nil {
		log.Printf("Orientation transform: %v", err)
		result.Warning = err.Error()
	}
	matrix := m.Matrix()
	result.Matrix = &matrix
	return result, nil
}

type setOrientationArgs struct {
	Path string `json:"path"`
	Code int    `json:"code"`
}

func (s *Server) handleSetOrientation(args json.RawMessage) (interface{}, error) {
	var a setOrientationArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	code := imaging.OrientationCode(a.Code)
	if err := imaging.WriteOrientation(a.Path, code); err != nil {
		return nil, err
	}
	// The cached pixels were rotated under the old tag.
	s.cache.Evict(a.Path)
	return &OrientationResult{Code: code, Name: code.String(), Path: a.Path}, nil
}

// === Model Input and Output Handlers ===

type imageScaleArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageScale(args json.RawMessage) (interface{}, error) {
	var a imageScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d must be positive", imaging.ErrInvalidArgument, a.Width, a.Height)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return encodeImageResult(imaging.ScaleToExact(img.Image, a.Width, a.Height))
}

type imageToTensorArgs struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Mean   float32 `json:"mean"`
	Std    float32 `json:"std"`
}

func (s *Server) handleImageToTensor(args json.RawMessage) (interface{}, error) {
	var a imageToTensorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	t, err := imaging.ToTensor(img.Image, a.Width, a.Height, a.Mean, a.Std)
	if err != nil {
		return nil, err
	}
	return &TensorResult{
		Width:      t.Width,
		Height:     t.Height,
		Channels:   3,
		Shape:      []int{1, t.Height, t.Width, 3},
		Length:     len(t.Data),
		DType:      "float32",
		ByteOrder:  "little-endian",
		DataBase64: base64.StdEncoding.EncodeToString(t.Bytes()),
	}, nil
}

type imageFromTensorArgs struct {
	Tensor      [][][][]float32 `json:"tensor"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	SaveToAlbum bool            `json:"save_to_album"`
}

func (s *Server) handleImageFromTensor(args json.RawMessage) (interface{}, error) {
	var a imageFromTensorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.FromTensor(a.Tensor, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	result, err := encodeImageResult(img)
	if err != nil {
		return nil, err
	}
	if a.SaveToAlbum {
		path, err := s.album.Save(img)
		if err != nil {
			return nil, err
		}
		result.SavedPath = path
	}
	return result, nil
}

func (s *Server) handleSaveAlbum(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	path, err := s.album.Save(img.Image)
	if err != nil {
		return nil, err
	}
	return &SaveResult{SavedPath: path}, nil
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img.Image, a.X, a.Y)
}

type imageOCRArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

func (s *Server) handleImageOCR(args json.RawMessage) (interface{}, error) {
	var a imageOCRArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.ocrLanguage
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return ocr.RecognizeText(img.Image, a.Language)
}
