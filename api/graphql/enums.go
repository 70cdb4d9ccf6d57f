package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/creatorhub/socialgraph/internal/enum"
)

// memberTypeIDEnum is the closed tier set. Values are typed as
// enum.MemberTierID so argument coercion hands resolvers the domain type
// directly, and a stored value outside the set fails to serialize instead of
// leaking through as an open string.
var memberTypeIDEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "MemberTypeId",
	Values: graphql.EnumValueConfigMap{
		"basic": &graphql.EnumValueConfig{
			Value: enum.MemberTierBasic,
		},
		"business": &graphql.EnumValueConfig{
			Value: enum.MemberTierBusiness,
		},
	},
})
