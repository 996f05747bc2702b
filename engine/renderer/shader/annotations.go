// annotations.go defines the annotation types and parser for the WGSL pre-processor.
// Annotations are single-line WGSL comments prefixed with @oxy: that either inject a
// registered struct definition or generate a @group/@binding declaration for it.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix marks an annotation inside a WGSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered struct.
	//
	// Syntax: //@oxy:include <struct_type>
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a @group/@binding variable declaration and
	// records it in the pre-processor's declarations list.
	//
	// Syntax: //@oxy:group <group> <binding> <address_space> <var_name> <struct_type>
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// Annotation is one parsed @oxy: annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments:
	//   - include: [0] = struct type key
	//   - group:   [0] = address space, [1] = var name, [2] = struct type key
	Args []AnnotationArg

	// Line is the 1-based source line, for error reporting.
	Line int

	// Group and Binding are set for group annotations only.
	Group   *int
	Binding *int
}

// AnnotationArg is a struct type key or address space identifier.
type AnnotationArg string

const (
	// AnnotationArgCamera is the orbit camera uniform (view, projection, eye).
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgVertex is the position+colour vertex input.
	AnnotationArgVertex AnnotationArg = "vertex"
)

const (
	annotationArgUniform AnnotationArg = "uniform"
	annotationArgRead    AnnotationArg = "storage_read"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgVertex,
}

var validAddressSpaces = []AnnotationArg{
	annotationArgUniform,
	annotationArgRead,
}

// parseAnnotation parses one WGSL line. It returns nil with no error for lines
// without the annotation prefix.
//
// Parameters:
//   - line: the raw WGSL source line
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case annotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @oxy group annotation requires five arguments (group, binding, address space, var name, struct type)", lineNum)
		}
		group, err := strconv.Atoi(args[1])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group number %q in @oxy group annotation", lineNum, args[1])
		}
		binding, err := strconv.Atoi(args[2])
		if err != nil || binding < 0 {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @oxy group annotation", lineNum, args[2])
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @oxy group annotation", lineNum, args[3])
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[5])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy group annotation", lineNum, args[5])
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
