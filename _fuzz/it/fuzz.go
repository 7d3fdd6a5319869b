// +build gofuzz

package ruledsl

import (
	"context"

	"github.com/blizzy78/ruledsl"
	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/env"

	// required for go-fuzz-build
	_ "github.com/dvyukov/go-fuzz/go-fuzz-dep"
)

// Fuzz feeds arbitrary input through Validate and, if that reports the input valid,
// through Execute against a small fixed environment. Any panic is a bug: every failure
// this package can anticipate is supposed to surface as a *dslerror.Error, not a panic.
func Fuzz(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	d, err := ruledsl.New()
	if err != nil {
		panic(err)
	}

	input := string(data)

	result := d.Validate(input)
	if !result.IsValid {
		if result.Err != nil && !dslerror.Is(result.Err, dslerror.Syntax) && !dslerror.Is(result.Err, dslerror.Validation) {
			panic(result.Err)
		}
		return 0
	}

	e := env.MapEnvironment{
		"x": int64(1),
		"y": "a string",
		"z": []interface{}{int64(1), int64(2), int64(3)},
	}

	if _, err := d.Execute(context.Background(), input, e); err != nil {
		if !dslerror.Is(err, dslerror.Syntax) && !dslerror.Is(err, dslerror.Validation) && !dslerror.Is(err, dslerror.Runtime) {
			panic(err)
		}
		return 0
	}

	return 1
}
