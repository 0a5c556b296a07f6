package pattern

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	escapedOpenToken = iota
	escapedCloseToken
	openToken
	closeToken
	textToken
)

var (
	escapedOpenMatcher  = parsly.NewToken(escapedOpenToken, "{{", matcher.NewFragment("{{"))
	escapedCloseMatcher = parsly.NewToken(escapedCloseToken, "}}", matcher.NewFragment("}}"))
	openMatcher         = parsly.NewToken(openToken, "{", matcher.NewByte('{'))
	closeMatcher        = parsly.NewToken(closeToken, "}", matcher.NewByte('}'))
	textMatcher         = parsly.NewToken(textToken, "text", &textRun{})
)

// textRun matches any bytes up to the next brace
type textRun struct{}

func (t *textRun) Match(cursor *parsly.Cursor) (matched int) {
	for _, b := range cursor.Input[cursor.Pos:] {
		if b == '{' || b == '}' {
			break
		}
		matched++
	}
	return matched
}

type segment struct {
	literal string
	field   bool
	offset  int
}

// tokenize splits template into literal and field body segments
func tokenize(template string) ([]*segment, error) {
	var result []*segment
	cursor := parsly.NewCursor("", []byte(template), 0)
	var field *segment
	appendLiteral := func(text string, pos int) {
		if n := len(result); n > 0 && !result[n-1].field {
			result[n-1].literal += text
			return
		}
		result = append(result, &segment{literal: text, offset: pos})
	}
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		if field != nil {
			match := cursor.MatchAny(closeMatcher, openMatcher, textMatcher)
			switch match.Code {
			case closeToken:
				result = append(result, field)
				field = nil
			case openToken:
				return nil, newError(template, pos, "unexpected '{' inside field")
			case textToken:
				field.literal = match.Text(cursor)
			default:
				return nil, newError(template, pos, "unexpected input")
			}
			continue
		}
		match := cursor.MatchAny(escapedOpenMatcher, escapedCloseMatcher, openMatcher, closeMatcher, textMatcher)
		switch match.Code {
		case escapedOpenToken:
			appendLiteral("{", pos)
		case escapedCloseToken:
			appendLiteral("}", pos)
		case openToken:
			field = &segment{field: true, offset: pos}
		case closeToken:
			return nil, newError(template, pos, "unmatched '}'")
		case textToken:
			appendLiteral(match.Text(cursor), pos)
		default:
			return nil, newError(template, pos, "unexpected input")
		}
	}
	if field != nil {
		return nil, newError(template, field.offset, "unterminated field")
	}
	return result, nil
}
