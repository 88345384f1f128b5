package app

import "xmp-reconcile/internal/types"

type ExportRequest struct {
	Path      string
	OutputDir string
	Schemas   []string
}

type ExportResult struct {
	OutputPath string
	Items      int
}

type ImportRequest struct {
	Path    string
	CSVPath string
	Write   bool
	Schemas []string
}

type ImportResult struct {
	Items     int
	Matched   int
	Mutations int
	Written   int
	Rejected  []string
}

type MergeRequest struct {
	Path           string
	AnnotationsDir string
	Write          bool
	Schemas        []string
}

type MergeResult struct {
	Items     int
	Annotated int
	Mutations int
	Written   int
	Rejected  []string
}

type InspectRequest struct {
	Path    string
	Schemas []string
}

type FieldValue struct {
	Key   string
	Shape types.PropertyShape
	Value string
}

type InspectResult struct {
	Filename  string
	HasPacket bool
	Fields    []FieldValue
}
