package main

import (
	"fmt"
	"os"

	"github.com/Ctl-F/nimble"
)

const source = `// greeting
fn greet(name: u8) -> u32 {
	let count = 3;
	while count > 0 {
		print("hello, \t");
		print(name);
		count -= 1;
	}
	return 0;
}
`

// Example of scanning a nimble source and printing its tokens:
//
// ```
// > go run _example/main.go
// Comment("// greeting\n") @ demo.nim:1:1
// fn("fn") @ demo.nim:2:1
// Identifier("greet") @ demo.nim:2:4
// ...
// EOF @ demo.nim:11:1
// ```
func main() {
	tokens := nimble.Scan("demo.nim", []byte(source))

	for _, tok := range tokens {
		fmt.Println(tok)
	}

	for _, tok := range nimble.Errors(tokens) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", tok.Pos, tok.Err)
	}

	fp, err := nimble.Fingerprint(tokens)
	if err != nil {
		panic(err)
	}
	fmt.Printf("fingerprint: %016x\n", fp)
}
