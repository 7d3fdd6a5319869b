package parser

import (
	"testing"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/lexer"
)

var tree ast.Node

const benchInput = `IF x >= 1 AND y.foo <= 2 OR NOT COUNT(z) == 3 THEN RETURN(x, [1, 2, 3], "ok")
ELIF w != None THEN RETURN(None)
ELSE RETURN(FALSE)`

func BenchmarkParse(b *testing.B) {
	l, err := lexer.New()
	if err != nil {
		b.Fatalf("build lexer: %v", err)
	}

	tokens, err := l.Tokenize(benchInput)
	if err != nil {
		b.Fatalf("tokenize: %v", err)
	}

	p := New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		node, err := p.Parse(tokens)
		if err != nil {
			b.Fatalf("parse: %v", err)
		}
		tree = Reduce(node)
	}
}
