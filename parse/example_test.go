package parse_test

import (
	"fmt"

	"github.com/deltapad/textcore/parse"
)

func ExampleParse() {
	entries, err := parse.Parse([]byte(`{"a":1,"b":[true,null]}`))
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		fmt.Println(e.Path, e.ValueString(), e.Start, e.End)
	}
	// Output:
	// a 1 5 6
	// b[0] true 12 16
	// b[1] null 17 21
}

func ExampleError() {
	_, err := parse.ParseString(`{"a":}`)
	fmt.Println(err)
	// Output:
	// parse error: unexpected character '}': expected a value at offset 5 (line=1, col=6)
}
