// pre_processor.go expands @oxy: annotations in WGSL source and collects the binding
// declarations the renderer uses to build its bind group layout.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/model"
)

// registryEntry pairs a WGSL struct source with its type name.
type registryEntry struct {
	Source string
	Type   string
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string

	// declarations is reset at the start of each Process call.
	declarations []Annotation
}

// PreProcessor expands @oxy: annotations in WGSL source.
type PreProcessor interface {
	// Process replaces @oxy:include lines with the registered struct source and
	// @oxy:group lines with generated @group/@binding declarations. Each struct is
	// included at most once.
	//
	// Parameters:
	//   - source: WGSL source containing annotations
	//
	// Returns:
	//   - string: the expanded WGSL source
	//   - error: an error if an annotation is malformed, a binding slot is declared twice,
	//     or a group annotation references a struct that was never included
	Process(source string) (string, error)

	// Declarations returns the group annotations from the last Process call, in source order.
	//
	// Returns:
	//   - []Annotation: the declarations collected during the last Process call
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the camera uniform and vertex input structs registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera: {Source: camera.GPUCameraUniformSource, Type: "CameraUniform"},
			AnnotationArgVertex: {Source: model.GPUVertexSource, Type: "VertexInput"},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgUniform: "var<uniform>",
			annotationArgRead:    "var<storage, read>",
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	included := make(map[AnnotationArg]bool)
	slots := make(map[[2]int]int)

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			if included[a.Args[0]] {
				continue
			}
			included[a.Args[0]] = true
			out = append(out, p.structRegistry[a.Args[0]].Source)
		case AnnotationTypeBindingGroup:
			if !included[a.Args[2]] {
				return "", fmt.Errorf("line %d: @oxy group references %q before it is included", a.Line, a.Args[2])
			}
			slot := [2]int{*a.Group, *a.Binding}
			if prev, ok := slots[slot]; ok {
				return "", fmt.Errorf("line %d: group %d binding %d already declared on line %d", a.Line, slot[0], slot[1], prev)
			}
			slots[slot] = a.Line

			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;",
				*a.Group, *a.Binding, p.addressSpaceRegistry[a.Args[0]], a.Args[1], p.structRegistry[a.Args[2]].Type))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

// FindDeclaration returns the first declaration binding the given struct type.
//
// Parameters:
//   - declarations: the list returned by Declarations
//   - structType: the struct type key to look for
//
// Returns:
//   - Annotation: the matching declaration
//   - bool: false if no declaration binds structType
func FindDeclaration(declarations []Annotation, structType AnnotationArg) (Annotation, bool) {
	for _, d := range declarations {
		if d.Type == AnnotationTypeBindingGroup && d.Args[2] == structType {
			return d, true
		}
	}
	return Annotation{}, false
}
