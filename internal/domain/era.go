package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Era identifies one target decade for photo restyling. The set of eras is
// fixed and ordered; the order drives both queue population and album layout
// slot assignment.
type Era string

const (
	Era1950s Era = "1950s"
	Era1960s Era = "1960s"
	Era1970s Era = "1970s"
	Era1980s Era = "1980s"
	Era1990s Era = "1990s"
	Era2000s Era = "2000s"
)

var eraOrder = []Era{Era1950s, Era1960s, Era1970s, Era1980s, Era1990s, Era2000s}

var eraNicknames = map[Era]string{
	Era1950s: "the fifties",
	Era1960s: "the sixties",
	Era1970s: "the seventies",
	Era1980s: "the eighties",
	Era1990s: "the nineties",
	Era2000s: "the two thousands",
}

var titleCaser = cases.Title(language.English)

// Eras returns the fixed era set in canonical order. Callers receive a fresh
// slice and may reorder it freely.
func Eras() []Era {
	out := make([]Era, len(eraOrder))
	copy(out, eraOrder)
	return out
}

// ParseEra resolves free-form input to a known era.
func ParseEra(s string) (Era, error) {
	candidate := Era(strings.TrimSpace(strings.ToLower(s)))
	for _, era := range eraOrder {
		if era == candidate {
			return era, nil
		}
	}
	return "", ErrUnknownEra
}

// DisplayName renders the caption label drawn onto album cells, e.g.
// "The Fifties" for the 1950s.
func (e Era) DisplayName() string {
	nickname, ok := eraNicknames[e]
	if !ok {
		return titleCaser.String(string(e))
	}
	return titleCaser.String(nickname)
}

func (e Era) String() string {
	return string(e)
}
