package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// settingsProperties describes the optional pipeline overrides shared by all
// tools.
func settingsProperties() map[string]interface{} {
	return map[string]interface{}{
		"strategy": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"threshold", "diff_blue"},
			"description": "threshold: keep pixels where the mask is red. diff_blue: keep pixels where the mask differs from the original and is blue-dominant, then remove thin strokes. Default threshold",
		},
		"red_thresh": map[string]interface{}{
			"type":        "integer",
			"description": "threshold strategy: mask red must be greater than this (0-255). Default 150",
		},
		"green_thresh": map[string]interface{}{
			"type":        "integer",
			"description": "threshold strategy: mask green must be less than this (0-255). Default 100",
		},
		"blue_thresh": map[string]interface{}{
			"type":        "integer",
			"description": "threshold strategy: mask blue must be less than this (0-255). Default 100",
		},
		"diff_thresh": map[string]interface{}{
			"type":        "integer",
			"description": "diff_blue strategy: summed channel difference must be greater than this (0-765). Default 30",
		},
		"kernel_size": map[string]interface{}{
			"type":        "integer",
			"description": "diff_blue strategy: odd square kernel size for stroke removal. Default 17",
		},
		"resample": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"linear", "nearest", "box"},
			"description": "Filter used when the mask must be resized to the original. Default linear",
		},
	}
}

func withSettings(props map[string]interface{}) map[string]interface{} {
	for k, v := range settingsProperties() {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "mask_cutout",
			Description: "Cut the foreground out of an image using a mask image. Returns a transparent PNG cropped to the kept area, either written to output_path or returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withSettings(map[string]interface{}{
					"original": map[string]interface{}{
						"type":        "string",
						"description": "URL (http/https) or absolute path of the original image",
					},
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "URL (http/https) or absolute path of the mask image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path for the PNG. Parent directories are created. When omitted the PNG is returned base64-encoded",
					},
				}),
				"required": []string{"original", "mask"},
			},
		},
		{
			Name:        "mask_summary",
			Description: "Report how many pixels a mask keeps, their bounding box and the average mask color of the kept area, along with the stored size and format of both images. Use this to tune thresholds before cutting.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withSettings(map[string]interface{}{
					"original": map[string]interface{}{
						"type":        "string",
						"description": "URL (http/https) or absolute path of the original image",
					},
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "URL (http/https) or absolute path of the mask image",
					},
				}),
				"required": []string{"original", "mask"},
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
