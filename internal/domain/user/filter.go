package user

// Filter holds optional equality criteria. Nil fields do not constrain the result.
type Filter struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// NewFilter keeps only the non-empty criteria.
func NewFilter(email, firstName, lastName string) Filter {
	return Filter{
		Email:     nonEmpty(email),
		FirstName: nonEmpty(firstName),
		LastName:  nonEmpty(lastName),
	}
}

func (f Filter) IsEmpty() bool {
	return f.Email == nil && f.FirstName == nil && f.LastName == nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
