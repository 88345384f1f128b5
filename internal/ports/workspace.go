package ports

// WorkspacePort discovers the image files a reconcile pass operates on.
type WorkspacePort interface {
	// FindImages returns the image paths reachable from path. A file path
	// is returned as-is; a directory is walked for jpeg files.
	FindImages(path string) ([]string, error)
}
