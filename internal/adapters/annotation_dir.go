package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/types"
)

// tagRecordKey is the key under which tag-like annotation records expose
// their string value, e.g. {"tag": "sunset"}.
const tagRecordKey = "tag"

// FlickrAnnotationAdapter loads per-item flickr export fragments from a
// directory of photo_<id>.json files.
type FlickrAnnotationAdapter struct{}

func NewFlickrAnnotationAdapter() FlickrAnnotationAdapter {
	return FlickrAnnotationAdapter{}
}

// ItemID extracts the numeric photo id from an export filename. Export
// names end in "<id>_<secret>_o.<ext>" or "<name>_<id>.<ext>"; after
// stripping the extension and the "_o" originality marker, the id is the
// last underscore-separated token made only of digits, with the
// second-to-last token accepted as fallback.
func (a FlickrAnnotationAdapter) ItemID(filename string) (string, bool) {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.TrimSuffix(name, "_o")
	tokens := strings.Split(name, "_")

	if allDigits(tokens[len(tokens)-1]) {
		return tokens[len(tokens)-1], true
	}
	if len(tokens) > 1 && allDigits(tokens[len(tokens)-2]) {
		return tokens[len(tokens)-2], true
	}
	return "", false
}

// Load reads photo_<id>.json from dir and normalizes it into an annotation
// fragment: strings stay scalar, string lists and tag-record lists become
// deduplicated string collections in first-occurrence order. Fields of any
// other type are dropped.
func (a FlickrAnnotationAdapter) Load(dir string, id string) (types.AnnotationFragment, bool, error) {
	path := filepath.Join(dir, "photo_"+id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read annotation file: " + path).
			WithCause(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse annotation file: " + path).
			WithCause(err)
	}

	fragment := make(types.AnnotationFragment, len(raw))
	for field, value := range raw {
		switch v := value.(type) {
		case string:
			fragment[field] = types.AnnotationValue{Text: v}
		case []any:
			fragment[field] = types.AnnotationValue{Items: normalizeList(v), List: true}
		}
	}
	return fragment, true, nil
}

// normalizeList flattens a json list into strings. Elements are either
// plain strings or tag-like records; duplicates are dropped, keeping the
// first occurrence. Anything else is skipped.
func normalizeList(elements []any) []string {
	seen := make(map[string]struct{}, len(elements))
	items := make([]string, 0, len(elements))
	add := func(item string) {
		if item == "" {
			return
		}
		if _, dup := seen[item]; dup {
			return
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}

	for _, element := range elements {
		switch v := element.(type) {
		case string:
			add(v)
		case map[string]any:
			if tag, ok := v[tagRecordKey].(string); ok {
				add(tag)
			}
		}
	}
	return items
}

func allDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var _ ports.AnnotationSourcePort = FlickrAnnotationAdapter{}
