package forms

import (
	"encoding/json"

	"github.com/wI2L/jsondiff"
)

// Draft is an uncommitted copy of a record's editable fields. Current is
// edited in place; the seed it started from is kept for dirty tracking.
type Draft[F any] struct {
	seed    F
	Current F
}

func NewDraft[F any](seed F) *Draft[F] {
	return &Draft[F]{seed: clone(seed), Current: clone(seed)}
}

// clone deep-copies v through its JSON form so that slices and maps in the
// draft never alias the seed.
func clone[F any](v F) F {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out F
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func (d *Draft[F]) Seed() F { return clone(d.seed) }

// Changes lists the JSON pointers of the fields that differ from the seed.
func (d *Draft[F]) Changes() ([]string, error) {
	patch, err := jsondiff.Compare(d.seed, d.Current)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(patch))
	for _, op := range patch {
		paths = append(paths, string(op.Path))
	}
	return paths, nil
}

func (d *Draft[F]) Dirty() bool {
	changes, err := d.Changes()
	return err != nil || len(changes) > 0
}

// Reset discards edits.
func (d *Draft[F]) Reset() {
	d.Current = clone(d.seed)
}
