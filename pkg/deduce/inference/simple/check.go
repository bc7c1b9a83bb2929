package simple

import (
	"fmt"

	"github.com/cognicore/deduce/pkg/deduce/inference"
	"github.com/cognicore/deduce/pkg/deduce/internalerr"
)

// Check reports whether teaching s would contradict a statement the engine
// can already prove. It never mutates the engine.
//
//	all A are B   contradicts  no A are B
//	no A are B    contradicts  all A are B, all B are A
//	some A are B  contradicts  no A are B
func (e *Engine) Check(s inference.Statement) error {
	var conflicts []inference.Statement

	switch s.Kind {
	case inference.KindAll, inference.KindSome:
		conflicts = []inference.Statement{
			{Kind: inference.KindNo, Subject: s.Subject, Predicate: s.Predicate},
		}
	case inference.KindNo:
		conflicts = []inference.Statement{
			{Kind: inference.KindAll, Subject: s.Subject, Predicate: s.Predicate},
			{Kind: inference.KindAll, Subject: s.Predicate, Predicate: s.Subject},
		}
	default:
		return fmt.Errorf("check %q: %w: unknown kind %s", s, internalerr.ErrInvalidInput, s.Kind)
	}

	for _, c := range conflicts {
		if e.Ask(c) {
			return fmt.Errorf("check %q: %w: already know %s", s, internalerr.ErrContradiction, c)
		}
	}
	return nil
}
