package ast

import (
	"testing"

	"github.com/matryer/is"
)

func TestTruthy(t *testing.T) {
	is := is.New(t)

	is.True(!Truthy(nil))
	is.True(!Truthy(false))
	is.True(Truthy(true))
	is.True(!Truthy(""))
	is.True(Truthy("x"))
	is.True(!Truthy(int64(0)))
	is.True(Truthy(int64(1)))
	is.True(!Truthy([]interface{}{}))
	is.True(Truthy([]interface{}{1}))
	is.True(Truthy(struct{ A int }{}))
}

func TestArithmeticOperators(t *testing.T) {
	is := is.New(t)

	r, err := NewPlusOperator().Evaluate(int64(1), int64(2))
	is.NoErr(err)
	is.Equal(r, int64(3))

	r, err = NewPlusOperator().Evaluate(int64(1), 2.5)
	is.NoErr(err)
	is.Equal(r, 3.5)

	r, err = NewMultOperator().Evaluate(int64(3), int64(4))
	is.NoErr(err)
	is.Equal(r, int64(12))

	r, err = NewModOperator().Evaluate(int64(7), int64(3))
	is.NoErr(err)
	is.Equal(r, int64(1))

	_, err = NewPlusOperator().Evaluate("x", int64(1))
	is.True(err != nil)
}

func TestComparisonOperators(t *testing.T) {
	is := is.New(t)

	r, err := NewGreaterThanOperator().Evaluate(int64(5), int64(3))
	is.NoErr(err)
	is.Equal(r, true)

	r, err = NewEqualOperator().Evaluate(int64(5), 5.0)
	is.NoErr(err)
	is.Equal(r, true)

	r, err = NewEqualOperator().Evaluate("a", "a")
	is.NoErr(err)
	is.Equal(r, true)

	// EqualOperator broadcasts a scalar against every element of a list.
	r, err = NewEqualOperator().Evaluate([]interface{}{int64(1), int64(2)}, int64(1))
	is.NoErr(err)
	is.Equal(r, []interface{}{true, false})
}

func TestBooleanOperators(t *testing.T) {
	is := is.New(t)

	r, err := NewAndOperator().Evaluate(true, false)
	is.NoErr(err)
	is.Equal(r, false)

	r, err = NewOrOperator().Evaluate(true, false)
	is.NoErr(err)
	is.Equal(r, true)

	r, err = NewNotOperator().Evaluate(false)
	is.NoErr(err)
	is.Equal(r, true)

	// Zipped, element-wise when both sides are lists.
	r, err = NewAndOperator().Evaluate([]interface{}{true, false}, []interface{}{true, true})
	is.NoErr(err)
	is.Equal(r, []interface{}{true, false})
}

func TestAttributeOperator(t *testing.T) {
	is := is.New(t)

	op := NewAttributeOperator(".name")
	is.Equal(op.Name, "name")

	r, err := op.Evaluate(map[string]interface{}{"name": "alice"})
	is.NoErr(err)
	is.Equal(r, "alice")

	type person struct{ Name string }
	r, err = op.Evaluate(person{Name: "bob"})
	is.NoErr(err)
	is.Equal(r, "bob")

	_, err = op.Evaluate(map[string]interface{}{"other": 1})
	is.True(err != nil)
}

func TestIndexingOperator(t *testing.T) {
	is := is.New(t)

	op, err := NewIndexingOperator("[2]")
	is.NoErr(err)
	is.Equal(op.Index, 2)

	r, err := op.Evaluate([]interface{}{10, 20, 30})
	is.NoErr(err)
	is.Equal(r, 20)

	_, err = op.Evaluate([]interface{}{10})
	is.True(err != nil)
}

func TestCountFunction(t *testing.T) {
	is := is.New(t)

	r, err := NewCountFunction().Evaluate([]interface{}{true, false, int64(1), ""})
	is.NoErr(err)
	is.Equal(r, int64(2))

	_, err = NewCountFunction().Evaluate(int64(1))
	is.True(err != nil)
}

func TestOperands(t *testing.T) {
	is := is.New(t)

	i, err := NewIntOperand("42")
	is.NoErr(err)
	v, err := i.TrueValue(nil)
	is.NoErr(err)
	is.Equal(v, int64(42))

	f, err := NewFloatOperand("1.5")
	is.NoErr(err)
	v, err = f.TrueValue(nil)
	is.NoErr(err)
	is.Equal(v, 1.5)

	s := NewStringOperand(`"hi"`)
	is.Equal(s.Value, "hi")

	s2 := NewStringOperand(`'hi'`)
	is.Equal(s2.Value, "hi")

	b := NewBoolOperand("TRUE")
	is.Equal(b.Value, true)

	n := NoneOperand{}
	v, err = n.TrueValue(nil)
	is.NoErr(err)
	is.Equal(v, nil)

	_, err = NewIntOperand("not a number")
	is.True(err != nil)
}

type testEnv map[string]interface{}

func (e testEnv) Value(name string) (interface{}, bool) {
	v, ok := e[name]
	return v, ok
}

func TestVariableOperand(t *testing.T) {
	is := is.New(t)

	op := NewVariableOperand("x")
	is.Equal(op.Name, "x")

	v, err := op.TrueValue(testEnv{"x": int64(9)})
	is.NoErr(err)
	is.Equal(v, int64(9))

	_, err = op.TrueValue(testEnv{})
	is.True(err != nil)

	_, err = op.TrueValue(nil)
	is.True(err != nil)
}

func TestReturnAction(t *testing.T) {
	is := is.New(t)

	a := NewReturnAction()
	is.True(a.ValidateArgs())
	is.True(a.ValidateArgs(1, 2, 3))

	v, err := a.Execute(int64(1))
	is.NoErr(err)
	is.Equal(v, int64(1))

	v, err = a.Execute(int64(1), int64(2))
	is.NoErr(err)
	is.Equal(v, Tuple{int64(1), int64(2)})

	v, err = a.Execute()
	is.NoErr(err)
	is.Equal(v, Tuple(nil))
}

func TestIsPunctuator(t *testing.T) {
	is := is.New(t)

	is.True(IsPunctuator(NewPunctuator(Comma)))
	is.True(!IsPunctuator(NewKeyword(IfKeyword)))
}
