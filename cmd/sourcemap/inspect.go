package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/germtb/sourcemap"
	"github.com/germtb/sourcemap/internal/lookupindex"
	"github.com/germtb/sourcemap/sourcemaperr"
)

var inspectAt string

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <map.json>",
		Short: "Print the decoded segments of a source map",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	cmd.Flags().StringVar(&inspectAt, "at", "", "look up the nearest mapping to generated line:column, e.g. --at 10:4")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	container, err := sourcemap.NewFromVLQ(doc.Mappings, doc.Sources, doc.Names, 0, 0)
	if err != nil {
		color.Red("sourcemap: failed to decode %s: %v", args[0], err)
		return err
	}

	result, err := container.GetMap()
	if err != nil {
		return err
	}

	if inspectAt != "" {
		line, column, err := parseLineColumn(inspectAt)
		if err != nil {
			return err
		}
		idx := lookupindex.Build(result)
		entry, ok := idx.Nearest(line, column)
		if !ok {
			fmt.Println("no mapping found")
			return nil
		}
		printEntry(result, entry)
		return nil
	}

	for _, entry := range result.Mappings {
		printEntry(result, entry)
	}
	return nil
}

func printEntry(result sourcemap.MapResult, e sourcemap.MapEntry) {
	if e.Source == nil {
		fmt.Printf("%d:%d -> (no source)\n", e.Generated.Line, e.Generated.Column)
		return
	}

	source := "?"
	if int(*e.Source) < len(result.Sources) {
		source = result.Sources[*e.Source]
	}

	name := ""
	if e.Name != nil && int(*e.Name) < len(result.Names) {
		name = " " + result.Names[*e.Name]
	}

	fmt.Printf("%d:%d -> %s %d:%d%s\n", e.Generated.Line, e.Generated.Column, source, e.Original.Line, e.Original.Column, name)
}

func parseLineColumn(s string) (int32, int32, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, sourcemaperr.NewArgumentError("--at", fmt.Sprintf("expected line:column, got %q", s))
	}
	line, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return 0, 0, sourcemaperr.NewArgumentError("--at", fmt.Sprintf("invalid line in %q: %v", s, err))
	}
	column, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return 0, 0, sourcemaperr.NewArgumentError("--at", fmt.Sprintf("invalid column in %q: %v", s, err))
	}
	return int32(line), int32(column), nil
}
