package refs

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
)

// RemoteSource is a lookup table endpoint answering GET with a list of
// records and POST {name} with the created record.
type RemoteSource struct {
	Client *apiclient.Client
	Path   string
}

func (s *RemoteSource) List(ctx context.Context) ([]Record, error) {
	records, err := apiclient.GetJSON[[]Record](ctx, s.Client, s.Path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", s.Path)
	}
	return records, nil
}

func (s *RemoteSource) Create(ctx context.Context, name string) (Record, error) {
	rec, err := apiclient.SendJSON[Record](ctx, s.Client, http.MethodPost, s.Path, map[string]string{"name": name})
	if err != nil {
		return Record{}, errors.Wrapf(err, "create %s", s.Path)
	}
	return rec, nil
}
