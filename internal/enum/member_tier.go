package enum

type MemberTierID string

const (
	MemberTierBasic    MemberTierID = "basic"
	MemberTierBusiness MemberTierID = "business"
)

func (t MemberTierID) String() string {
	return string(t)
}

// IsValid reports whether the value belongs to the closed tier set.
func (t MemberTierID) IsValid() bool {
	switch t {
	case MemberTierBasic, MemberTierBusiness:
		return true
	}
	return false
}
