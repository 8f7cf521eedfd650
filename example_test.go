package md2docx_test

import (
	"context"
	"fmt"

	md2docx "github.com/alnah/go-md2docx"
)

// Example_parseMarkdown shows the runs a markdown field converts to.
func Example_parseMarkdown() {
	r, err := md2docx.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq, err := r.ParseMarkdown(context.Background(), "Some **bold** text")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, run := range seq {
		for _, span := range run.Spans {
			fmt.Printf("%q bold=%v\n", span.Text, span.Format.Bold)
		}
	}
	// Output:
	// "Some " bold=false
	// "bold" bold=true
	// " text" bold=false
}

// ExampleLoadContext decodes report data with typed findings.
func ExampleLoadContext() {
	data, err := md2docx.LoadContext([]byte(`
title: Quarterly assessment
findings:
  - title: Open redirect
    severity: Medium
    endpoint_status:
      - endpoint: {protocol: https, host: app.example, path: /login}
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, f := range data["findings"].([]*md2docx.Finding) {
		endpoints, _ := md2docx.VulnerableEndpoints(f)
		fmt.Println(f.Severity, f.Title, endpoints[0])
	}
	// Output: Medium Open redirect https://app.example/login
}
