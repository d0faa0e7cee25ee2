// Package parser turns raw game-log rows into a typed, chronological
// GameLog: change tokens into resource deltas, rows into log entries.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Parser parses game-log rows against a fixed vocabulary.
type Parser struct {
	vocab model.Vocabulary
}

// New returns a Parser bound to the given vocabulary.
func New(vocab model.Vocabulary) *Parser {
	return &Parser{vocab: vocab}
}

// ParseDelta parses one change token (e.g. "+4c", "-2k") into a resource
// delta. A leading '-' marks a loss; anything else is a gain. The resource
// is the first vocabulary entry whose suffix ends the token; a token
// matching no suffix keeps ResourceUnknown (tolerated here, rejected later
// if it is ever folded as a gain). The quantity is the first run of digits
// anywhere in the token; a token with none is a MalformedTokenError.
func (p *Parser) ParseDelta(token string) (model.ResourceDelta, error) {
	if token == "" {
		return model.ResourceDelta{}, &MalformedTokenError{Token: token}
	}

	d := model.ResourceDelta{Direction: model.Gain}
	if strings.HasPrefix(token, "-") {
		d.Direction = model.Loss
	}

	for _, m := range p.vocab.Suffixes {
		if strings.HasSuffix(token, m.Suffix) {
			d.Resource = m.Kind
			break
		}
	}

	digits := digitRun.FindString(token)
	if digits == "" {
		return model.ResourceDelta{}, &MalformedTokenError{Token: token}
	}
	// Atoi only fails here on an absurdly long digit run; treat that the
	// same as no quantity.
	q, err := strconv.Atoi(digits)
	if err != nil {
		return model.ResourceDelta{}, &MalformedTokenError{Token: token}
	}
	d.Quantity = q

	return d, nil
}
