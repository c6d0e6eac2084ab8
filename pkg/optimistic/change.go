package optimistic

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pkg/errors"
)

// Change is a forward edit of one record and its inverse. Revert undoes only
// what Apply did. A Change is single use.
type Change[T any] struct {
	Apply  func(*T) error
	Revert func(*T) error
}

// SetField sets the field selected by field to value and restores the old
// value on revert.
func SetField[T, V any](field func(*T) *V, value V) Change[T] {
	var old V
	return Change[T]{
		Apply: func(rec *T) error {
			p := field(rec)
			old = *p
			*p = value
			return nil
		},
		Revert: func(rec *T) error {
			*field(rec) = old
			return nil
		},
	}
}

// Toggle flips a boolean field.
func Toggle[T any](field func(*T) *bool) Change[T] {
	var old bool
	return Change[T]{
		Apply: func(rec *T) error {
			p := field(rec)
			old = *p
			*p = !old
			return nil
		},
		Revert: func(rec *T) error {
			*field(rec) = old
			return nil
		},
	}
}

// MergePatch applies an RFC 7396 merge patch to the record's JSON form. The
// inverse patch is computed at apply time and names only the patched keys.
// The record must round-trip through JSON; fields hidden from it are reset.
func MergePatch[T any](patch []byte) (Change[T], error) {
	var patchDoc map[string]any
	if err := json.Unmarshal(patch, &patchDoc); err != nil {
		return Change[T]{}, errors.Wrap(err, "merge patch must be a JSON object")
	}
	var inverse []byte
	return Change[T]{
		Apply: func(rec *T) error {
			doc, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			var current map[string]any
			if err := json.Unmarshal(doc, &current); err != nil {
				return err
			}
			if inverse, err = json.Marshal(invertPatch(current, patchDoc)); err != nil {
				return err
			}
			return applyPatch(rec, doc, patch)
		},
		Revert: func(rec *T) error {
			if inverse == nil {
				return nil
			}
			doc, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			return applyPatch(rec, doc, inverse)
		},
	}, nil
}

func applyPatch[T any](rec *T, doc, patch []byte) error {
	patched, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return errors.Wrap(err, "apply merge patch")
	}
	var next T
	if err := json.Unmarshal(patched, &next); err != nil {
		return errors.Wrap(err, "decode patched record")
	}
	*rec = next
	return nil
}

// invertPatch returns the patch restoring doc's values for every key patch
// sets. Keys absent from doc are removed with null.
func invertPatch(doc, patch map[string]any) map[string]any {
	inv := make(map[string]any, len(patch))
	for k, pv := range patch {
		old, present := doc[k]
		if !present {
			inv[k] = nil
			continue
		}
		pObj, pIsObj := pv.(map[string]any)
		oObj, oIsObj := old.(map[string]any)
		if pIsObj && oIsObj {
			inv[k] = invertPatch(oObj, pObj)
			continue
		}
		inv[k] = old
	}
	return inv
}
