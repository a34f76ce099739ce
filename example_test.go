package varint_test

import (
	"fmt"

	"github.com/pkg/errors"

	varint "github.com/luke-vidler/sqlite-varint"
)

func ExampleRead() {
	// Small positive values take little space
	fmt.Println(varint.Read([]byte{0x01}))

	// Negative values always take 9 bytes, extra input is ignored
	fmt.Println(varint.Read([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
	// Output:
	// 1 1 <nil>
	// -1 9 <nil>
}

func ExampleRead_insufficientInput() {
	_, _, err := varint.Read([]byte{0x81, 0x80})
	fmt.Println(errors.Is(err, varint.ErrInsufficientInput))
	fmt.Println(err)
	// Output:
	// true
	// only 2 bytes available: varint: insufficient input
}

func ExampleByteLength() {
	n, _ := varint.ByteLength([]byte{0xff, 0x0f})
	fmt.Println(n)
	// Output: 2
}

func ExampleSerialize() {
	fmt.Printf("% x\n", varint.Serialize(257))
	fmt.Printf("% x\n", varint.Serialize(-1))
	// Output:
	// 82 01
	// ff ff ff ff ff ff ff ff ff
}

func ExampleAppend() {
	var buf []byte
	for _, v := range []int64{1, 300} {
		buf = varint.Append(buf, v)
	}
	fmt.Printf("% x\n", buf)
	// Output: 01 82 2c
}
