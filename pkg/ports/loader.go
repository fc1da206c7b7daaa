package ports

// GraphLoader defines how the engine retrieves scene definitions.
// This allows the storage layer (Loam, bundle file, memory) to be decoupled.
type GraphLoader interface {
	// GetNode retrieves the raw definition of a scene by ID.
	// It returns JSON bytes (which the compiler will parse) or an error
	// wrapping domain.ErrNodeNotFound when the scene does not exist.
	GetNode(id string) ([]byte, error)

	// ListNodes returns the IDs of all scenes available in the graph.
	// This is used by the validator and the 'quill graph' command.
	ListNodes() ([]string, error)
}
