package version

// Operator is a version comparison operator as it appears in a
// "Requires: name op version" constraint.
type Operator int

const (
	// AlwaysMatch is used for bare "Requires: name" entries with no version
	// constraint at all; Test always reports true regardless of versions.
	AlwaysMatch Operator = iota
	Equal
	NotEqual
	Less
	LessEq
	Greater
	GreaterEq
)

// String renders the operator the way it appears in a descriptor file, or
// in diagnostic output. Mirrors pkg-config's comparison_to_str.
func (op Operator) String() string {
	switch op {
	case AlwaysMatch:
		return "(any)"
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case Less:
		return "<"
	case LessEq:
		return "<="
	case Greater:
		return ">"
	case GreaterEq:
		return ">="
	default:
		return "(unknown)"
	}
}

// Test evaluates "have op want" for the given operator, using Compare to
// order have and want. AlwaysMatch is satisfied unconditionally without
// comparing the strings at all, matching pkg-config's version_test.
func Test(op Operator, have, want string) bool {
	if op == AlwaysMatch {
		return true
	}

	cmp := Compare(have, want)
	switch op {
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case Less:
		return cmp < 0
	case LessEq:
		return cmp <= 0
	case Greater:
		return cmp > 0
	case GreaterEq:
		return cmp >= 0
	default:
		return false
	}
}

// ParseOperator maps a descriptor's comparison token ("<", "<=", "=", "!=",
// ">=", ">") to an Operator. It returns false if s is not a recognized
// operator token.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "<":
		return Less, true
	case "<=":
		return LessEq, true
	case "=":
		return Equal, true
	case "!=":
		return NotEqual, true
	case ">=":
		return GreaterEq, true
	case ">":
		return Greater, true
	default:
		return AlwaysMatch, false
	}
}
