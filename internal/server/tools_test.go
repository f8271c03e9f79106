package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, name := range []string{"mask_cutout", "mask_summary"} {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}
			for _, key := range []string{"original", "mask", "strategy", "red_thresh", "diff_thresh", "kernel_size"} {
				if _, ok := props[key]; !ok {
					t.Errorf("property %s missing", key)
				}
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema required should be a []string")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required field %s not in properties", r)
				}
			}
		})
	}
}
