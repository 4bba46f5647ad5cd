package user

import (
	"fmt"
	"strings"

	domain "user-directory-api/internal/domain/user"
)

// buildSearchQuery ANDs one equality predicate per supplied criterion.
func buildSearchQuery(f domain.Filter) (string, []any) {
	var (
		preds []string
		args  []any
	)
	add := func(column string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		preds = append(preds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("email", f.Email)
	add("first_name", f.FirstName)
	add("last_name", f.LastName)

	var b strings.Builder
	b.WriteString(SelectUsersBase)
	if len(preds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(preds, " AND "))
	}
	b.WriteString(" ORDER BY id")

	return b.String(), args
}
