package cli

import (
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/money"
)

var decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	// Prices are typed the way people type them: "Rs 1,500", "2,000.50".
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return money.Parse(vals[0]), nil
	}, float64(0))
	return d
}

// ParseSets turns repeated key=value flags into form values. Repeating a key
// builds a list, e.g. --set tech_ids=React --set tech_ids=Go.
func ParseSets(sets []string) (url.Values, error) {
	values := url.Values{}
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Errorf("invalid --set %q (want key=value)", s)
		}
		values.Add(key, value)
	}
	return values, nil
}

// ApplySets decodes values onto the draft dst points at. Fields not named
// keep their value; a named list field is replaced, not appended to.
func ApplySets(dst any, values url.Values) error {
	if len(values) == 0 {
		return nil
	}
	resetLists(dst, values)
	return errors.Wrap(decoder.Decode(dst, values), "apply --set")
}

func resetLists(dst any, values url.Values) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Slice {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" {
			name = f.Name
		}
		for key := range values {
			if key == name || strings.HasPrefix(key, name+"[") {
				v.Field(i).Set(reflect.Zero(f.Type))
				break
			}
		}
	}
}
