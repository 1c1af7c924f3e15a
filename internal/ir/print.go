package ir

import (
	"fmt"
	"io"
)

// Fprint renders a code list in the text format of spec.md §6, one
// instruction per line (grounded on ir_codegen.hpp's irPrint).
func Fprint(w io.Writer, head *Instruction) error {
	for c := head; c != nil; c = c.Next {
		var err error
		switch c.Opcode {
		case Move:
			_, err = fmt.Fprintf(w, "%s := %s\n", c.Result, c.Arg1)
		case LoadAddr:
			_, err = fmt.Fprintf(w, "%s := &%s\n", c.Result, c.Arg1)
		case Load:
			_, err = fmt.Fprintf(w, "%s := *%s\n", c.Result, c.Arg1)
		case Store:
			_, err = fmt.Fprintf(w, "*%s := %s\n", c.Result, c.Arg1)
		case Add, Minus, Mul, Div:
			_, err = fmt.Fprintf(w, "%s := %s %s %s\n", c.Result, c.Arg1, relopSymbol(c.Opcode), c.Arg2)
		case FunDec:
			_, err = fmt.Fprintf(w, "FUNCTION %s :\n", c.Result)
		case LabelOp:
			_, err = fmt.Fprintf(w, "LABEL %s :\n", c.Result)
		case IfGoto:
			_, err = fmt.Fprintf(w, "IF %s %s %s GOTO %s\n", c.Arg1, relopSymbol(c.RelOp), c.Arg2, c.Result)
		case Goto:
			_, err = fmt.Fprintf(w, "GOTO %s\n", c.Result)
		case Read:
			_, err = fmt.Fprintf(w, "READ %s\n", c.Result)
		case Write:
			_, err = fmt.Fprintf(w, "WRITE %s\n", c.Result)
		case Call:
			_, err = fmt.Fprintf(w, "%s := CALL %s\n", c.Result, c.Arg1)
		case Return:
			_, err = fmt.Fprintf(w, "RETURN %s\n", c.Result)
		case Arg:
			_, err = fmt.Fprintf(w, "ARG %s\n", c.Result)
		case Param:
			_, err = fmt.Fprintf(w, "PARAM %s\n", c.Result)
		case Alloc:
			_, err = fmt.Fprintf(w, "DEC %s %d\n", c.Result, c.Size)
		default:
			_, err = fmt.Fprintf(w, "%s\n", c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
