package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/listing"
)

var ErrSignedOut = errors.New("not signed in; run login first")

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML goes through JSON first so keys match the API's field names.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func (s *rootState) write(w io.Writer, v any) error {
	switch s.format {
	case "", FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return errors.Errorf("unknown --output %q (want json or yaml)", s.format)
	}
}

// writeFieldErrors prints a validation failure one field per line.
func writeFieldErrors(w io.Writer, err error) {
	var verr *forms.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	keys := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, verr.Fields[k])
	}
}

// writePlain prints "id<TAB>record" lines followed by the page position.
func writePlain[T listing.Record](w io.Writer, page listing.Page[T]) error {
	for _, item := range page.Items {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", item.GetID(), item); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "page %d of %d (%d total)\n", page.Page, page.TotalPages, page.TotalItems)
	return err
}
