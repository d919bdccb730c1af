package language

import "testing"

func TestFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".go", "go"},
		{".py", "python"},
		{".ts", "typescript"},
		{".tsx", "typescript"},
		{".RS", "rust"},
		{".yml", "yaml"},
		{".unknown", "text"},
		{"", "text"},
	}
	for _, tt := range tests {
		if got := FromExtension(tt.ext); got != tt.want {
			t.Errorf("FromExtension(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestFromFilename(t *testing.T) {
	if got := FromFilename("cmd/server/main.go"); got != "go" {
		t.Errorf("FromFilename(main.go) = %q, want go", got)
	}
	if got := FromFilename("README"); got != Fallback {
		t.Errorf("FromFilename(README) = %q, want %q", got, Fallback)
	}
}

func TestIsCodeFile(t *testing.T) {
	if !IsCodeFile("pkg/app/server.go") {
		t.Error("expected .go to be a code file")
	}
	if !IsCodeFile("notes.MD") {
		t.Error("expected .MD to be a code file (case-insensitive)")
	}
	if IsCodeFile("image.png") {
		t.Error("expected .png not to be a code file")
	}
	if IsCodeFile("LICENSE") {
		t.Error("expected extensionless file not to be a code file")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("javascript"); got != "Javascript" {
		t.Errorf("DisplayName(javascript) = %q", got)
	}
}
