package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	fixgen "github.com/reoring/fixgen"
	"github.com/reoring/fixgen/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fixgen CLI\n\nUsage:\n  fixgen generate -schema schema.json|schema.yaml [-n count] [-pretty]\n\nNotes:\n  - Emits one generated JSON document per line on stdout.")
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var schemaPath string
	var count int
	var pretty bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (.json, .yaml, or .yml)")
	fs.IntVar(&count, "n", 1, "number of fixtures to generate")
	fs.BoolVar(&pretty, "pretty", false, "indent output")
	_ = fs.Parse(args)
	if schemaPath == "" || count < 1 {
		fs.Usage()
		os.Exit(2)
	}

	s, err := loadSchema(schemaPath)
	if err != nil {
		fatalf("%v", err)
	}

	for i := 0; i < count; i++ {
		v, err := fixgen.FromSchema(s)
		if err != nil {
			fatalf("generate: %v", err)
		}
		var out []byte
		if pretty {
			out, err = json.MarshalIndent(v, "", "  ")
		} else {
			out, err = json.Marshal(v)
		}
		if err != nil {
			fatalf("encode: %v", err)
		}
		fmt.Println(string(out))
	}
}

func loadSchema(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return schema.FromYAML(data)
	default:
		return schema.FromJSON(data)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
