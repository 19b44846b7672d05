package core

import "strconv"

type DataTypeKind int

const (
	IntType DataTypeKind = iota
	VarcharType
	BoolType
)

// DataType is a column's declared type. Length is set only for Varchar and
// is always positive.
type DataType struct {
	Kind   DataTypeKind `json:"-"`
	Length int          `json:"-"`
}

func (t DataType) String() string {
	switch t.Kind {
	case IntType:
		return "INT"
	case VarcharType:
		return "VARCHAR(" + strconv.Itoa(t.Length) + ")"
	case BoolType:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

func (t DataType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

type ConstraintKind int

const (
	PrimaryKey ConstraintKind = iota
	NotNull
	CheckConstraint
)

func (k ConstraintKind) String() string {
	switch k {
	case PrimaryKey:
		return "PRIMARY KEY"
	case NotNull:
		return "NOT NULL"
	case CheckConstraint:
		return "CHECK"
	default:
		return "UNKNOWN"
	}
}

func (k ConstraintKind) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.String())), nil
}

// Constraint is a single column constraint as written in the statement.
// Check is set only when Kind is CheckConstraint. A column carries exactly
// the constraints the statement spells out, in source order; multiple CHECK
// constraints are kept as independent entries.
type Constraint struct {
	Kind  ConstraintKind `json:"kind"`
	Check Expression     `json:"check,omitempty"`
}

type Column struct {
	Name        string       `json:"name"`
	Type        DataType     `json:"type"`
	Constraints []Constraint `json:"constraints,omitempty"`
}
