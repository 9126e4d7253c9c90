package util

import "testing"

func TestSanitizeProjectName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "dots become hyphens", input: "My App.v2", want: "my-app-v2"},
		{name: "colon becomes hyphen", input: "web:0", want: "web-0"},
		{name: "parens no space", input: "my-test(v2)", want: "my-testv2"},
		{name: "leading trailing spaces", input: "  spaces  ", want: "spaces"},
		{name: "uppercase", input: "UPPERCASE", want: "uppercase"},
		{name: "already valid", input: "already-valid", want: "already-valid"},
		{name: "collapse hyphens", input: "a--b", want: "a-b"},
		{name: "empty string", input: "", want: ""},
		{name: "underscores preserved", input: "my_project", want: "my_project"},
		{name: "dotfile", input: ".dotfiles", want: "dotfiles"},
		{name: "only special chars", input: "()", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeProjectName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeProjectName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProjectNameFromDir(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: "/home/me/code/web", want: "web"},
		{dir: "/home/me/code/Web.App/", want: "web-app"},
		{dir: "/", want: ""},
		{dir: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			if got := ProjectNameFromDir(tt.dir); got != tt.want {
				t.Errorf("ProjectNameFromDir(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}
