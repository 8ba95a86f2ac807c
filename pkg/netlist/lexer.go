package netlist

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// statementLexer tokenizes one normalized netlist line. By the time a line
// reaches the lexer the normalizer has merged continuations, collapsed
// whitespace and removed spaces around "=" and inside quoted expressions, so
// three token kinds remain.
var statementLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Quoted expressions, e.g. '2*vdd' in parameter assignments.
	{Name: "Expr", Pattern: `'[^']*'`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Word", Pattern: `[^\s=']+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// statement is the grammar for one netlist line: a sequence of fields, each
// either a bare word or a key=value assignment.
type statement struct {
	Fields []*statementField `@@+`
}

type statementField struct {
	Name string `@( Word | Expr )`
	// Tail captures an assignment suffix: the "=" and, when present, the
	// value token.
	Tail []string `( @Eq @( Word | Expr )? )?`
}

// text reconstructs the original token for a field.
func (f *statementField) text() string {
	return f.Name + strings.Join(f.Tail, "")
}

var statementParser = participle.MustBuild[statement](
	participle.Lexer(statementLexer),
	participle.Elide("Whitespace"),
)

// splitStatement splits a normalized line into its tokens: the instance name
// followed by port nodes and argument tokens. Assignments come back as single
// key=value tokens.
func splitStatement(line string) ([]string, error) {
	st, err := statementParser.ParseString("", line)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(st.Fields))
	for i, f := range st.Fields {
		tokens[i] = f.text()
	}
	return tokens, nil
}
