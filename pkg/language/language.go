// Package language negotiates which source variant to install for a batch
// of hooks.
package language

import (
	"fmt"

	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/model"
)

// Negotiate checks that every hook ships lang. The batch is uniform: when any
// hook lacks the variant the whole batch fails with a LanguageUnavailableError
// that records the other variant for each hook offering one.
func Negotiate(hooks []*model.Hook, lang model.Language) ([]model.VariantDecision, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%q: %w", lang, errors.ErrInvalidLanguage)
	}

	decisions := make([]model.VariantDecision, 0, len(hooks))
	unavailable := &errors.LanguageUnavailableError{Language: lang.String()}

	for _, h := range hooks {
		d := model.VariantDecision{Hook: h, Chosen: lang}
		if h.Supports(lang) {
			d.OK = true
			decisions = append(decisions, d)
			continue
		}

		unavailable.Names = append(unavailable.Names, h.Name)
		if other := lang.Other(); h.Supports(other) {
			d.Alternative = other
			unavailable.Alternatives = append(unavailable.Alternatives, errors.Alternative{
				Name:     h.Name,
				Language: other.String(),
			})
		}
		decisions = append(decisions, d)
	}

	if len(unavailable.Names) > 0 {
		return decisions, unavailable
	}
	return decisions, nil
}
