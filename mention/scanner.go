package mention

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/tidwall/gjson"
)

// Scanner returns the user ids tagged in a document update, in order of
// appearance and possibly repeated.
type Scanner interface {
	Scan(update []byte) []string
}

// DeltaScanner reads rich-text deltas where a mention is an embedded insert:
// {"ops":[{"insert":{"mention":{"id":"u1"}}}]}. A bare ops array is accepted too.
type DeltaScanner struct{}

var deltaPaths = []string{
	"ops.#.insert.mention.id",
	"ops.#.insert.mention.userId",
	"#.insert.mention.id",
	"#.insert.mention.userId",
}

func (DeltaScanner) Scan(update []byte) []string {
	if !gjson.ValidBytes(update) {
		return nil
	}
	var ids []string
	for _, path := range deltaPaths {
		gjson.GetBytes(update, path).ForEach(func(_, value gjson.Result) bool {
			if value.Type == gjson.String {
				ids = append(ids, value.Str)
			}
			return true
		})
	}
	return ids
}

// markupAttributes are the tagged-span attributes carrying a target user id,
// e.g. <span data-type="mention" data-id="u1">.
var markupAttributes = []string{
	`data-mention-id="`,
	`data-user-id="`,
	`data-mention="`,
}

// MarkupScanner finds mention attributes in HTML fragments with an Aho-Corasick
// automaton, one pass regardless of the number of attribute spellings.
type MarkupScanner struct {
	matcher *goahocorasick.Machine
}

func NewMarkupScanner() (MarkupScanner, error) {
	patterns := make([][]rune, len(markupAttributes))
	for i, attribute := range markupAttributes {
		patterns[i] = []rune(attribute)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return MarkupScanner{}, err
	}
	return MarkupScanner{matcher: m}, nil
}

func (s MarkupScanner) Scan(update []byte) []string {
	var ids []string
	for _, fragment := range fragments(update) {
		ids = append(ids, s.scanText(fragment)...)
	}
	return ids
}

func (s MarkupScanner) scanText(text string) []string {
	content := []rune(text)
	if len(content) == 0 {
		return nil
	}
	var ids []string
	for _, term := range s.matcher.MultiPatternSearch(content, false) {
		start := term.Pos + len(term.Word)
		if start < 0 || start > len(content) {
			continue
		}
		rest := string(content[start:])
		end := strings.IndexByte(rest, '"')
		if end <= 0 {
			continue
		}
		ids = append(ids, rest[:end])
	}
	return ids
}

// fragments returns the markup strings of an update: the update itself when
// it is not JSON, or every string value nested in it.
func fragments(update []byte) []string {
	if !gjson.ValidBytes(update) {
		return []string{string(update)}
	}
	var res []string
	var walk func(value gjson.Result)
	walk = func(value gjson.Result) {
		switch {
		case value.Type == gjson.String:
			if strings.Contains(value.Str, "data-") {
				res = append(res, value.Str)
			}
		case value.IsObject() || value.IsArray():
			value.ForEach(func(_, child gjson.Result) bool {
				walk(child)
				return true
			})
		}
	}
	walk(gjson.ParseBytes(update))
	return res
}
