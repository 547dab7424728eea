// interpreter.go — runtime value model and tree-walking evaluator.
//
// Values are dynamically typed: a tagged carrier over nil, bool, float64
// and string. Evaluation is one recursive descent over the expression tree
// with no shared mutable state; type mismatches surface as *RuntimeError
// carrying the operator token, never as a process abort.
package glox

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil  ValueTag = iota // nil (no payload)
	VTBool                 // bool
	VTNum                  // float64
	VTStr                  // string
)

// Value is the runtime carrier produced by the evaluator. The tag
// determines which Go type Data holds. Values have no identity beyond
// structural equality.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton nil Value.
var Nil = Value{Tag: VTNil}

// Primitive constructors.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// Truthy maps a value to a boolean for logical negation: only nil and
// false are falsy. Zero and the empty string are truthy.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equal is structural equality over the value union. Values of different
// tags are never equal; no coercion occurs.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	if v.Tag == VTNil {
		return true
	}
	return v.Data == o.Data
}

// String renders the canonical text form: "nil", "true"/"false", shortest
// decimal for numbers, raw text for strings.
func (v Value) String() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return v.Data.(string)
	default:
		return "<unknown>"
	}
}

// Interpreter reduces expression trees to runtime values. Successful
// top-level results are rendered to Out; failures go through the Reporter.
type Interpreter struct {
	rep *Reporter
	Out io.Writer
}

// NewInterpreter returns an interpreter printing results to stdout.
func NewInterpreter(rep *Reporter) *Interpreter {
	return &Interpreter{rep: rep, Out: os.Stdout}
}

// Interpret evaluates expr and prints the canonical rendering of its value.
// A runtime error is reported through the Reporter instead and sets the
// runtime-error flag.
func (ip *Interpreter) Interpret(expr Expr) {
	v, err := ip.Evaluate(expr)
	if err != nil {
		ip.rep.Runtime(err.(*RuntimeError))
		return
	}
	fmt.Fprintln(ip.Out, v)
}

// Evaluate reduces expr to a Value, or fails with a *RuntimeError when an
// operator is applied to operands of the wrong type.
func (ip *Interpreter) Evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *Literal:
		switch v := e.Value.(type) {
		case nil:
			return Nil, nil
		case bool:
			return Bool(v), nil
		case float64:
			return Num(v), nil
		case string:
			return Str(v), nil
		default:
			panic(fmt.Sprintf("interpreter: literal holds unexpected %T", e.Value))
		}

	case *Grouping:
		return ip.Evaluate(e.Expression)

	case *Unary:
		right, err := ip.Evaluate(e.Right)
		if err != nil {
			return Nil, err
		}
		switch e.Operator.Type {
		case BANG:
			return Bool(!right.Truthy()), nil
		case MINUS:
			if right.Tag != VTNum {
				return Nil, &RuntimeError{
					Token: e.Operator,
					Msg:   fmt.Sprintf("Operand '%s' must be a number to apply '%s' operator.", right, e.Operator.Lexeme),
				}
			}
			return Num(-right.Data.(float64)), nil
		}
		panic(fmt.Sprintf("interpreter: %v is not a unary operator", e.Operator.Type))

	case *Binary:
		left, err := ip.Evaluate(e.Left)
		if err != nil {
			return Nil, err
		}
		right, err := ip.Evaluate(e.Right)
		if err != nil {
			return Nil, err
		}
		return ip.binary(e.Operator, left, right)
	}
	panic(fmt.Sprintf("interpreter: unexpected node %T", expr))
}

func (ip *Interpreter) binary(op Token, left, right Value) (Value, error) {
	switch op.Type {
	// Arithmetic. Division by zero follows IEEE 754.
	case MINUS:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Num(l - r), nil
	case DIV:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Num(l / r), nil
	case MULT:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Num(l * r), nil
	case PLUS:
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.Data.(float64) + right.Data.(float64)), nil
		}
		if left.Tag == VTStr && right.Tag == VTStr {
			return Str(left.Data.(string) + right.Data.(string)), nil
		}
		return Nil, &RuntimeError{
			Token: op,
			Msg:   fmt.Sprintf("Operands '%s' and '%s' must both be numbers or strings.", left, right),
		}

	// Comparison
	case GREATER:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Bool(l > r), nil
	case GREATER_EQ:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Bool(l >= r), nil
	case LESS:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Bool(l < r), nil
	case LESS_EQ:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return Nil, err
		}
		return Bool(l <= r), nil

	// Equality never fails at runtime.
	case NEQ:
		return Bool(!left.Equal(right)), nil
	case EQ:
		return Bool(left.Equal(right)), nil
	}
	panic(fmt.Sprintf("interpreter: %v is not a binary operator", op.Type))
}

func numberOperands(op Token, left, right Value) (float64, float64, error) {
	if left.Tag == VTNum && right.Tag == VTNum {
		return left.Data.(float64), right.Data.(float64), nil
	}
	return 0, 0, &RuntimeError{
		Token: op,
		Msg:   fmt.Sprintf("Operands '%s' and '%s' must both be numbers.", left, right),
	}
}
