package app

import (
	"path/filepath"

	"xmp-reconcile/internal/adapters"
	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/types"
)

type Service struct {
	Schema      ports.FieldSchemaPort
	Packets     ports.PacketStorePort
	Tabular     ports.TabularPort
	Annotations ports.AnnotationSourcePort
	Workspace   ports.WorkspacePort
}

func NewService() Service {
	return Service{
		Schema:      adapters.NewSchemaFileAdapter(),
		Packets:     adapters.NewSidecarStore(),
		Tabular:     adapters.NewCSVFileAdapter(),
		Annotations: adapters.NewFlickrAnnotationAdapter(),
		Workspace:   adapters.NewWorkspaceAdapter(),
	}
}

// loadSchemas layers optional schema overlay files on top of the built-in
// tables, in the order given.
func (s Service) loadSchemas(paths []string) error {
	for _, path := range paths {
		if err := s.Schema.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// discoverItems resolves the input path to the items of a reconcile pass.
// The annotation id stays empty when the filename carries none.
func (s Service) discoverItems(path string) ([]types.Item, error) {
	files, err := s.Workspace.FindImages(path)
	if err != nil {
		return nil, err
	}
	items := make([]types.Item, 0, len(files))
	for _, file := range files {
		item := types.Item{Path: file, Filename: filepath.Base(file)}
		item.AnnotationID, _ = s.Annotations.ItemID(item.Filename)
		items = append(items, item)
	}
	return items, nil
}
