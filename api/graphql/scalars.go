package graphql

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// uuidType accepts and emits RFC 4122 identifiers in their canonical string
// form. Malformed input fails coercion, which the engine reports as a
// validation error before the resolver runs.
var uuidType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "UUID",
	Description: "A universally unique identifier in its canonical textual form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			return v
		case uuid.UUID:
			return v.String()
		case *string:
			if v == nil {
				return nil
			}
			return *v
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if _, err := uuid.Parse(s); err != nil {
			return nil
		}
		return s
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		sv, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		if _, err := uuid.Parse(sv.Value); err != nil {
			return nil
		}
		return sv.Value
	},
})
