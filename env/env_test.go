package env

import (
	"testing"

	"github.com/gobuffalo/nulls"
	"github.com/matryer/is"
)

func TestMapEnvironment_Value(t *testing.T) {
	is := is.New(t)

	e := MapEnvironment{
		"x":      int64(42),
		"s":      nulls.NewString("hi"),
		"absent": nulls.String{},
	}

	v, ok := e.Value("x")
	is.True(ok)
	is.Equal(v, int64(42))

	v, ok = e.Value("s")
	is.True(ok)
	is.Equal(v, "hi")

	v, ok = e.Value("absent")
	is.True(ok)
	is.Equal(v, nil)

	_, ok = e.Value("missing")
	is.True(!ok)
}

func TestNormalize(t *testing.T) {
	is := is.New(t)

	is.Equal(Normalize(nulls.NewInt64(7)), int64(7))
	is.Equal(Normalize(nulls.Int64{}), nil)
	is.Equal(Normalize(nulls.NewFloat64(1.5)), 1.5)
	is.Equal(Normalize(nulls.NewBool(true)), true)
	is.Equal(Normalize("plain"), "plain")
}

func TestEmpty(t *testing.T) {
	is := is.New(t)

	_, ok := Empty.Value("anything")
	is.True(!ok)
}

func TestPermissive(t *testing.T) {
	is := is.New(t)

	v, ok := Permissive.Value("anything")
	is.True(ok)
	is.Equal(v, nil)
}
