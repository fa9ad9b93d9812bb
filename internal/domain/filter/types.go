// Package filter provides ad-hoc list filtering primitives shared by
// repositories and the HTTP layer.
package filter

// Operator is a comparison operator for advanced filters.
type Operator string

const (
	Equal        Operator = "eq"
	NotEqual     Operator = "ne"
	Greater      Operator = "gt"
	GreaterEqual Operator = "gte"
	Less         Operator = "lt"
	LessEqual    Operator = "lte"
	Like         Operator = "like"
	In           Operator = "in"
	IsNull       Operator = "isnull"
	NotNull      Operator = "notnull"
)

// Item is a single filter condition applied to a column.
type Item struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// Valid reports whether the operator is known.
func (o Operator) Valid() bool {
	switch o {
	case Equal, NotEqual, Greater, GreaterEqual, Less, LessEqual, Like, In, IsNull, NotNull:
		return true
	}
	return false
}
