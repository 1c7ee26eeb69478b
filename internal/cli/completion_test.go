package cli

import (
	"slices"
	"testing"
)

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
		skip  string
	}{
		{"", []string{"pdf", "svg", "png", "json"}, ""},
		{"pdf,", []string{"pdf,svg", "pdf,png", "pdf,json"}, "pdf,pdf"},
		{"pdf,svg,p", []string{"pdf,svg,png", "pdf,svg,json"}, "pdf,svg,svg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _ := completeFormats(nil, nil, tt.input)
			for _, w := range tt.want {
				if !slices.Contains(got, w) {
					t.Errorf("completeFormats(%q) = %v, missing %q", tt.input, got, w)
				}
			}
			if tt.skip != "" && slices.Contains(got, tt.skip) {
				t.Errorf("completeFormats(%q) should not offer %q", tt.input, tt.skip)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		if err := execute(t, "completion", shell); err != nil {
			t.Errorf("completion %s: %v", shell, err)
		}
	}
	if err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
