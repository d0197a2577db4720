package main

import (
	"strings"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"cornell scene", "cornell", false},
		{"showcase scene", "showcase", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scn, options, err := createScene(tt.sceneType, 1.0)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scn != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scn)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scn == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}

			// Verify the scene is renderable
			if scn.Camera == nil {
				t.Errorf("Scene '%s' has no camera", tt.sceneType)
			}
			if len(scn.Surfaces) == 0 {
				t.Errorf("Scene '%s' has no surfaces", tt.sceneType)
			}
			if options.Samples <= 0 {
				t.Errorf("Scene '%s' should default to positive samples, got %d", tt.sceneType, options.Samples)
			}
			if options.MaxDepth <= 0 {
				t.Errorf("Scene '%s' should allow reflection bounces, got depth %d", tt.sceneType, options.MaxDepth)
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
	}{
		{"cornell scene", "cornell"},
		{"showcase scene", "showcase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := createOutputDir("output", tt.sceneType)

			if outputDir == "" {
				t.Fatalf("Expected non-empty output directory for scene '%s'", tt.sceneType)
			}
			if !strings.Contains(outputDir, tt.sceneType) {
				t.Errorf("Expected output directory to contain '%s', got '%s'", tt.sceneType, outputDir)
			}
			if !strings.HasPrefix(outputDir, "output") {
				t.Errorf("Expected output directory under 'output', got '%s'", outputDir)
			}
		})
	}
}
