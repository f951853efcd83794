package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/morfeolab/morfeo/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8000", "server url")
	tokenFlag := flag.String("token", "", "server token")
	modeFlag := flag.String("mode", "fields", "output mode (tables, fields)")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] file...")
		os.Exit(2)
	}

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	var inputs []client.FileInput

	for _, path := range flag.Args() {
		file, err := os.Open(path)

		if err != nil {
			panic(err)
		}

		defer file.Close()

		inputs = append(inputs, client.FileInput{
			Name:   file.Name(),
			Reader: file,
		})
	}

	var result any
	var err error

	switch *modeFlag {
	case "tables":
		result, err = c.Extractions.ExtractTables(ctx, inputs)

	case "fields":
		result, err = c.Extractions.ExtractMedicalData(ctx, inputs)

	default:
		fmt.Fprintln(os.Stderr, "unknown mode: "+*modeFlag)
		os.Exit(2)
	}

	if err != nil {
		panic(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	enc.Encode(result)
}
