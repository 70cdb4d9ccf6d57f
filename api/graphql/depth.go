package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	api_errors "github.com/creatorhub/socialgraph/api/errors"
)

// MaxQueryDepth bounds the shape of a request document. It is the only
// load-shedding mechanism in the service: relationship resolvers fan out one
// repository call per edge, so capping nesting caps worst-case fan-out.
const MaxQueryDepth = 5

// ValidateDepth checks every operation in a parsed document against the
// nesting limit. It runs before execution; on violation the caller must not
// execute the document at all.
func ValidateDepth(doc *ast.QueryDocument, limit int) gqlerror.List {
	var errs gqlerror.List
	for _, op := range doc.Operations {
		depth := selectionSetDepth(op.SelectionSet, doc.Fragments, map[string]bool{})
		if depth > limit {
			errs = append(errs, api_errors.NewDepthError(op.Name, depth, limit))
		}
	}
	return errs
}

// selectionSetDepth returns the deepest chain of nested field selections.
// A field without sub-selections contributes nothing; a field with children
// counts one level plus whatever its children nest.
func selectionSetDepth(set ast.SelectionSet, fragments ast.FragmentDefinitionList, seen map[string]bool) int {
	max := 0
	for _, sel := range set {
		if d := selectionDepth(sel, fragments, seen); d > max {
			max = d
		}
	}
	return max
}

func selectionDepth(sel ast.Selection, fragments ast.FragmentDefinitionList, seen map[string]bool) int {
	switch s := sel.(type) {
	case *ast.Field:
		if len(s.SelectionSet) == 0 {
			return 0
		}
		return 1 + selectionSetDepth(s.SelectionSet, fragments, seen)
	case *ast.InlineFragment:
		// Fragments are transparent for counting: only field nesting adds depth.
		return selectionSetDepth(s.SelectionSet, fragments, seen)
	case *ast.FragmentSpread:
		if seen[s.Name] {
			return 0
		}
		seen[s.Name] = true
		defer delete(seen, s.Name)

		def := fragments.ForName(s.Name)
		if def == nil {
			return 0
		}
		return selectionSetDepth(def.SelectionSet, fragments, seen)
	}
	return 0
}
