package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/mask-cutout/internal/cutout"
	"github.com/ironsheep/mask-cutout/internal/fetch"
	"github.com/ironsheep/mask-cutout/internal/imageio"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mask_cutout").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "mask_cutout":
		return s.handleMaskCutout(ctx, args)
	case "mask_summary":
		return s.handleMaskSummary(ctx, args)
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

type imagePairArgs struct {
	Original string `json:"original"`
	Mask     string `json:"mask"`
	cutout.Overrides
}

// load validates the shared arguments and reads both images.
func (s *Server) load(ctx context.Context, a imagePairArgs) (original, mask []byte, opts cutout.Options, err error) {
	if a.Original == "" || a.Mask == "" {
		return nil, nil, opts, fmt.Errorf("original and mask are required")
	}
	opts, err = s.defaults.Apply(a.Overrides).Options()
	if err != nil {
		return nil, nil, opts, err
	}
	if original, err = fetch.Open(ctx, s.fetcher, a.Original); err != nil {
		return nil, nil, opts, fmt.Errorf("original: %w", err)
	}
	if mask, err = fetch.Open(ctx, s.fetcher, a.Mask); err != nil {
		return nil, nil, opts, fmt.Errorf("mask: %w", err)
	}
	return original, mask, opts, nil
}

type maskCutoutArgs struct {
	imagePairArgs
	OutputPath string `json:"output_path"`
}

// CutoutResult describes a produced cutout.
type CutoutResult struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Cropped     bool        `json:"cropped"`
	Bounds      *cutout.Box `json:"bounds,omitempty"`
	KeptPixels  int         `json:"kept_pixels"`
	Strategy    string      `json:"strategy"`
	OutputPath  string      `json:"output_path,omitempty"`
	ImageBase64 string      `json:"image_base64,omitempty"`
	MimeType    string      `json:"mime_type"`
}

func (s *Server) handleMaskCutout(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a maskCutoutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	original, mask, opts, err := s.load(ctx, a.imagePairArgs)
	if err != nil {
		return nil, err
	}

	png, res, err := cutout.Cut(original, mask, opts)
	if err != nil {
		return nil, err
	}

	out := &CutoutResult{
		Width:      res.Image.Rect.Dx(),
		Height:     res.Image.Rect.Dy(),
		Cropped:    res.Cropped,
		KeptPixels: res.Kept,
		Strategy:   res.Strategy,
		MimeType:   "image/png",
	}
	if res.Cropped {
		out.Bounds = cutout.NewBox(res.Bounds)
	}

	if a.OutputPath == "" {
		out.ImageBase64 = base64.StdEncoding.EncodeToString(png)
		return out, nil
	}
	if err := imageio.WriteFile(a.OutputPath, png); err != nil {
		return nil, err
	}
	out.OutputPath = a.OutputPath
	return out, nil
}

// SummaryResult is the mask_summary output: the pipeline summary plus the
// stored size and format of both inputs before alignment.
type SummaryResult struct {
	*cutout.Summary
	Original *imageio.DimensionsResult `json:"original"`
	Mask     *imageio.DimensionsResult `json:"mask"`
}

func (s *Server) handleMaskSummary(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imagePairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	originalData, maskData, opts, err := s.load(ctx, a)
	if err != nil {
		return nil, err
	}

	out := &SummaryResult{}
	if out.Original, err = imageio.Dimensions(originalData); err != nil {
		return nil, fmt.Errorf("%w: original: %w", cutout.ErrDecode, err)
	}
	if out.Mask, err = imageio.Dimensions(maskData); err != nil {
		return nil, fmt.Errorf("%w: mask: %w", cutout.ErrDecode, err)
	}

	original, mask, err := cutout.DecodePair(originalData, maskData)
	if err != nil {
		return nil, err
	}
	if out.Summary, err = cutout.Summarize(original, mask, opts); err != nil {
		return nil, err
	}
	return out, nil
}
