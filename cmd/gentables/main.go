// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command gentables emits the field package's precomputed tables as a Go
// source file of literals, the build-time alternative to field's
// init-time construction (see field/doc.go's go:generate directive). The
// emitted file is never checked in; it exists for callers who want to pay
// the table-construction cost at build time instead of process start.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"

	"github.com/xtaci/novelrs/field"
)

const tmpl = `// Code generated by cmd/gentables. DO NOT EDIT.

package field

var generatedTables = TableSnapshot{
	Base: [Bits]uint16{ {{range .Base}}{{.}}, {{end}} },
	LogTable: [Size]uint16{ {{range .LogTable}}{{.}}, {{end}} },
	ExpTable: [Size]uint16{ {{range .ExpTable}}{{.}}, {{end}} },
	LogWalsh: [Size]Log{ {{range .LogWalsh}}{{.}}, {{end}} },
	SkewTable: [OneMask]Log{ {{range .SkewTable}}{{.}}, {{end}} },
	BTable: [Size >> 1]Log{ {{range .BTable}}{{.}}, {{end}} },
}
`

func main() {
	out := flag.String("out", "tables_generated.go", "output file path")
	flag.Parse()

	snap := field.Snapshot()

	t, err := template.New("tables").Parse(tmpl)
	if err != nil {
		log.Fatalf("gentables: parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, snap); err != nil {
		log.Fatalf("gentables: execute template: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentables: gofmt generated source: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("gentables: write %s: %v", *out, err)
	}

	fmt.Printf("gentables: wrote %s (%d bytes)\n", *out, len(src))
}
