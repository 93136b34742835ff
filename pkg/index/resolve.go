package index

import (
	"regexp"

	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/model"
)

var hookNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Resolution is the outcome of matching requested names against an index.
type Resolution struct {
	Resolved []*model.Hook // in request order
	NotFound []string
}

// ValidateNames rejects names that cannot identify a hook.
func ValidateNames(names []string) error {
	var invalid []string
	for _, n := range names {
		if !hookNamePattern.MatchString(n) {
			invalid = append(invalid, n)
		}
	}
	if len(invalid) > 0 {
		return &errors.InvalidHookNameError{Names: invalid}
	}
	return nil
}

// Resolve matches names exactly and case-sensitively, in request order.
// Any missing name fails the whole resolution with a HooksNotFoundError
// listing every missing name; the returned Resolution still carries both lists.
func (idx *Index) Resolve(names []string) (Resolution, error) {
	res := Resolution{
		Resolved: make([]*model.Hook, 0, len(names)),
	}
	for _, n := range names {
		h, ok := idx.Find(n)
		if !ok {
			res.NotFound = append(res.NotFound, n)
			continue
		}
		res.Resolved = append(res.Resolved, h)
	}
	if len(res.NotFound) > 0 {
		return res, &errors.HooksNotFoundError{Names: res.NotFound}
	}
	return res, nil
}
