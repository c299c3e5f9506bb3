package wallhaven

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// SearchQuery is the structured form of the "q" search parameter. The
// syntax is space separated terms: keyword or +keyword to include, -keyword
// to exclude, @username for an uploader, id:N for an exact tag, type:png,
// type:jpg or type:jpeg for the image type, and like:<id> for similar
// wallpapers.
type SearchQuery struct {
	Terms []*QueryTerm `parser:"@@*"`
}

type QueryTerm struct {
	Excluded *string      `parser:"  '-' @Ident"`
	Included *string      `parser:"| '+' @Ident"`
	Username *string      `parser:"| '@' @Ident"`
	Filter   *QueryFilter `parser:"| @@"`
}

// QueryFilter is either a bare keyword (no Value) or a name:value filter.
type QueryFilter struct {
	Name  string  `parser:"@Ident"`
	Value *string `parser:"(':' @Ident)?"`
}

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z0-9_][a-zA-Z0-9_.]*`},
	{Name: "Punct", Pattern: `[-+@:]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var queryParser = participle.MustBuild[SearchQuery](
	participle.Lexer(queryLexer),
	participle.UseLookahead(2),
)

// ParseQuery parses a search query string into its structured form.
func ParseQuery(s string) (*SearchQuery, error) {
	if strings.TrimSpace(s) == "" {
		return &SearchQuery{}, nil
	}
	q, err := queryParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(err, "parse search query")
	}
	for _, term := range q.Terms {
		if f := term.Filter; f != nil && f.Value != nil {
			switch f.Name {
			case "id", "type", "like":
			default:
				return nil, errors.Errorf("unknown search filter %q", f.Name)
			}
		}
	}
	return q, nil
}

// Param renders the query the way the website encodes it: every term gets a
// "+" separator, excludes keep their "-" and uploaders their "@", so
// "forest -cars @joe" becomes "+forest+-cars+@joe".
func (q *SearchQuery) Param() string {
	var b strings.Builder
	for _, term := range q.Terms {
		b.WriteByte('+')
		switch {
		case term.Excluded != nil:
			b.WriteByte('-')
			b.WriteString(*term.Excluded)
		case term.Included != nil:
			b.WriteString(*term.Included)
		case term.Username != nil:
			b.WriteByte('@')
			b.WriteString(*term.Username)
		case term.Filter != nil && term.Filter.Value != nil:
			b.WriteString(term.Filter.Name)
			b.WriteByte(':')
			b.WriteString(*term.Filter.Value)
		case term.Filter != nil:
			b.WriteString(term.Filter.Name)
		}
	}
	return b.String()
}
