package filter

import "testing"

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name   string
		target string
		path   string
		want   bool
	}{
		{"exact", "example.py", "example.py", true},
		{"nested exact", "pkg/example.py", "pkg/example.py", true},
		{"different dir", "example.py", "pkg/example.py", false},
		{"prefix only", "example", "example.py", false},
		{"backslash path", "pkg/a.go", `pkg\a.go`, true},
		{"star", "pkg/*.go", "pkg/a.go", true},
		{"star does not cross dirs", "pkg/*.go", "pkg/sub/a.go", false},
		{"double star", "pkg/**/*.go", "pkg/sub/a.go", true},
		{"braces", "{a,b}.txt", "b.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.target)
			if err != nil {
				t.Fatalf("NewMatcher(%q): %v", tt.target, err)
			}
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) with target %q = %v, want %v", tt.path, tt.target, got, tt.want)
			}
		})
	}
}

func TestMatcher_MatchAny(t *testing.T) {
	m, err := NewMatcher("a.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.MatchAny(nil) {
		t.Error("MatchAny(nil) should be false")
	}
	if !m.MatchAny([]string{"b.go", "a.go"}) {
		t.Error("MatchAny should find a.go")
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		target  string
		wantErr bool
	}{
		{target: "example.py"},
		{target: "./docs/**/*.md"},
		{target: "", wantErr: true},
		{target: "[", wantErr: true},
		{target: "docs/{a,b", wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateTarget(tt.target)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTarget(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
		}
	}
}

func TestMatcher_Target(t *testing.T) {
	m, err := NewMatcher(`.\src\main.go`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Target() != "src/main.go" {
		t.Errorf("Target() = %q, expected %q", m.Target(), "src/main.go")
	}
}
