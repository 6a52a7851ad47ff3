package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f *generateFlags)
	}{
		{
			name: "defaults",
			args: []string{"text2png"},
			check: func(t *testing.T, f *generateFlags) {
				if f.io.outputDir != "." {
					t.Errorf("outputDir = %q, want %q", f.io.outputDir, ".")
				}
				if f.font.pointSize != 16 {
					t.Errorf("pointSize = %g, want 16", f.font.pointSize)
				}
				if f.colors.textColor != "black" || f.colors.background != "white" {
					t.Errorf("colors = %q on %q, want black on white",
						f.colors.textColor, f.colors.background)
				}
				if f.layout.padding != 4 {
					t.Errorf("padding = %d, want 4", f.layout.padding)
				}
				if f.layout.canvasPadding != 0.10 {
					t.Errorf("canvasPadding = %g, want 0.10", f.layout.canvasPadding)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"text2png", "-f", "in.txt", "-d", "out", "-s", "32", "-q"},
			check: func(t *testing.T, f *generateFlags) {
				if f.io.file != "in.txt" {
					t.Errorf("file = %q, want in.txt", f.io.file)
				}
				if f.io.outputDir != "out" {
					t.Errorf("outputDir = %q, want out", f.io.outputDir)
				}
				if f.font.pointSize != 32 {
					t.Errorf("pointSize = %g, want 32", f.font.pointSize)
				}
				if !f.common.quiet {
					t.Error("quiet not set")
				}
			},
		},
		{
			name: "long flags",
			args: []string{
				"text2png", "--file", "words.txt", "--size", "640x480",
				"--single-image", "--skip-comments", "--clobber",
				"--text-color", "navy", "--line-spacing", "6",
			},
			check: func(t *testing.T, f *generateFlags) {
				if f.layout.size != "640x480" {
					t.Errorf("size = %q, want 640x480", f.layout.size)
				}
				if !f.layout.singleImage || !f.layout.skipComments {
					t.Error("single-image or skip-comments not set")
				}
				if !f.io.clobber {
					t.Error("clobber not set")
				}
				if f.colors.textColor != "navy" {
					t.Errorf("textColor = %q, want navy", f.colors.textColor)
				}
				if f.layout.lineSpacing != 6 {
					t.Errorf("lineSpacing = %d, want 6", f.layout.lineSpacing)
				}
			},
		},
		{
			name: "help flag",
			args: []string{"text2png", "-h"},
			check: func(t *testing.T, f *generateFlags) {
				if !f.help {
					t.Error("help not set")
				}
			},
		},
		{
			name: "version flag",
			args: []string{"text2png", "--version"},
			check: func(t *testing.T, f *generateFlags) {
				if !f.version {
					t.Error("version not set")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, fs, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v): %v", tt.args, err)
			}
			if fs == nil {
				t.Fatal("parseFlags returned a nil FlagSet")
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"text2png", "--bogus"})
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestParseFlagsChangedTracking(t *testing.T) {
	_, fs, err := parseFlags([]string{"text2png", "-d", "out"})
	if err != nil {
		t.Fatal(err)
	}
	if !fs.Changed("output-dir") {
		t.Error("output-dir not marked changed")
	}
	if fs.Changed("point-size") {
		t.Error("point-size marked changed without being set")
	}
}
