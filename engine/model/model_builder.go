package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the mesh vertices.
//
// Parameters:
//   - vertices: the vertices to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle list indices.
//
// Parameters:
//   - indices: three indices per triangle
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}
