package shader

import (
	"strings"
	"testing"
)

func TestProcess_IncludeAndGroup(t *testing.T) {
	src := strings.Join([]string{
		"//@oxy:include camera",
		"//@oxy:include vertex",
		"//@oxy:include camera",
		"//@oxy:group 0 1 uniform cam camera",
		"fn main() {}",
	}, "\n")

	p := NewPreProcessor()
	out, err := p.Process(src)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n := strings.Count(out, "struct CameraUniform"); n != 1 {
		t.Fatalf("CameraUniform included %d times; want 1", n)
	}
	for _, want := range []string{
		"struct VertexInput",
		"@group(0) @binding(1) var<uniform> cam: CameraUniform;",
		"fn main() {}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "@oxy:") {
		t.Fatalf("annotations left in output:\n%s", out)
	}

	d, ok := FindDeclaration(p.Declarations(), AnnotationArgCamera)
	if !ok || *d.Group != 0 || *d.Binding != 1 || d.Line != 4 {
		t.Fatalf("camera declaration = %+v, %v", d, ok)
	}
	if _, ok := FindDeclaration(p.Declarations(), AnnotationArgVertex); ok {
		t.Fatalf("vertex struct has no binding but was found")
	}
}

func TestProcess_ResetsDeclarations(t *testing.T) {
	p := NewPreProcessor()
	if _, err := p.Process("//@oxy:include camera\n//@oxy:group 0 0 uniform camera camera"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, err := p.Process("fn main() {}"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n := len(p.Declarations()); n != 0 {
		t.Fatalf("declarations after second Process = %d; want 0", n)
	}
}

func TestProcess_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty annotation", "//@oxy:"},
		{"unknown type", "//@oxy:texture 0"},
		{"include arity", "//@oxy:include"},
		{"unknown struct", "//@oxy:include light"},
		{"group arity", "//@oxy:include camera\n//@oxy:group 0 0 uniform camera"},
		{"bad group", "//@oxy:include camera\n//@oxy:group x 0 uniform camera camera"},
		{"negative binding", "//@oxy:include camera\n//@oxy:group 0 -1 uniform camera camera"},
		{"bad address space", "//@oxy:include camera\n//@oxy:group 0 0 private camera camera"},
		{"group before include", "//@oxy:group 0 0 uniform camera camera"},
		{"duplicate slot", "//@oxy:include camera\n//@oxy:group 0 0 uniform a camera\n//@oxy:group 0 0 uniform b camera"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPreProcessor().Process(tt.src); err == nil {
				t.Fatalf("Process(%q) succeeded; want error", tt.src)
			}
		})
	}
}

func TestParseAnnotation_IgnoresPlainLines(t *testing.T) {
	for _, line := range []string{"", "fn main() {}", "// ordinary comment", "let s = \"@oxy:include camera\";"} {
		a, err := parseAnnotation(line, 1)
		if a != nil || err != nil {
			t.Fatalf("parseAnnotation(%q) = %v, %v; want nil, nil", line, a, err)
		}
	}
}
