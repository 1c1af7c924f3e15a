// Package ast defines the read-only tree shape consumed by the core:
// the semantic analyzer, IR generator, and IR optimizer never mutate a
// Node, they only read it. The lexer and parser that
// build this tree are a separate, external concern.
package ast

// Op is the closed enumeration of grammar productions and terminals
// the source-language parser may produce.
type Op int

const (
	Nop Op = iota
	Program
	ExtDefList
	ExtDef
	ExtDecList
	Specifier
	StructSpecifier
	VarDec
	FunDec
	VarList
	ParamDec
	CompSt
	StmtList
	Stmt
	DefList
	Def
	DecList
	Dec
	Exp
	Args
	ID
	StructTag
	IntConst
	FloatConst
	CharConst
	If
	Else
	Do
	While
	For
	Continue
	Break
	Return
	And
	Or
	Not
	Plus
	Minus
	Mul
	Div
	Assign
	Lt
	Le
	Gt
	Ge
	Ne
	Eq
	Lp
	Rp
	Lb
	Rb
	Lc
	Rc
	Dot
	Semi
	Comma
)

var opNames = [...]string{
	Nop:             "NOP",
	Program:         "Program",
	ExtDefList:      "ExtDefList",
	ExtDef:          "ExtDef",
	ExtDecList:      "ExtDecList",
	Specifier:       "Specifier",
	StructSpecifier: "StructSpecifier",
	VarDec:          "VarDec",
	FunDec:          "FunDec",
	VarList:         "VarList",
	ParamDec:        "ParamDec",
	CompSt:          "CompSt",
	StmtList:        "StmtList",
	Stmt:            "Stmt",
	DefList:         "DefList",
	Def:             "Def",
	DecList:         "DecList",
	Dec:             "Dec",
	Exp:             "Exp",
	Args:            "Args",
	ID:              "ID",
	StructTag:       "STRUCT",
	IntConst:        "INT",
	FloatConst:      "FLOAT",
	CharConst:       "CHAR",
	If:              "IF",
	Else:            "ELSE",
	Do:              "DO",
	While:           "WHILE",
	For:             "FOR",
	Continue:        "CONTINUE",
	Break:           "BREAK",
	Return:          "RETURN",
	And:             "AND",
	Or:              "OR",
	Not:             "NOT",
	Plus:            "PLUS",
	Minus:           "MINUS",
	Mul:             "MUL",
	Div:             "DIV",
	Assign:          "ASSIGN",
	Lt:              "LT",
	Le:              "LE",
	Gt:              "GT",
	Ge:              "GE",
	Ne:              "NE",
	Eq:              "EQ",
	Lp:              "LP",
	Rp:              "RP",
	Lb:              "LB",
	Rb:              "RB",
	Lc:              "LC",
	Rc:              "RC",
	Dot:             "DOT",
	Semi:            "SEMI",
	Comma:           "COMMA",
}

func (op Op) String() string {
	if int(op) >= 0 && int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Unknown"
}

// Specifier payload values (Node.Val when Op == Specifier and the node
// has no children — a bare primitive type name rather than a struct).
const (
	TypeInt = iota
	TypeFloat
	TypeChar
)

// TypeName renders a primitive specifier payload the way the type
// string encoding of spec.md §3.2 expects it.
func TypeName(val int) string {
	switch val {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeChar:
		return "char"
	default:
		return "unknown"
	}
}
