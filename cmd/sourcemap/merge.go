package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/germtb/sourcemap"
)

var (
	mergeLineOffset   int32
	mergeColumnOffset int32
	mergeOut          string
	mergeConfigPath   string
)

func newMergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <map.json> [more-maps.json...]",
		Short: "Merge one or more source maps into a single combined map",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMerge,
	}

	cmd.Flags().Int32Var(&mergeLineOffset, "line-offset", 0, "generated line offset applied to every input after the first")
	cmd.Flags().Int32Var(&mergeColumnOffset, "column-offset", 0, "generated column offset applied at the start of every decoded line")
	cmd.Flags().StringVar(&mergeOut, "out", "", "output file for the combined JSON document (default: print only the mappings string to stdout)")
	cmd.Flags().StringVar(&mergeConfigPath, "config", "sourcemap.yaml", "optional config file with default offsets and output path")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(mergeConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cmd.Flags().Changed("line-offset") && cfg.LineOffset != 0 {
		mergeLineOffset = cfg.LineOffset
	}
	if !cmd.Flags().Changed("column-offset") && cfg.ColumnOffset != 0 {
		mergeColumnOffset = cfg.ColumnOffset
	}
	if !cmd.Flags().Changed("out") && cfg.Out != "" {
		mergeOut = cfg.Out
	}

	container := sourcemap.New()

	for i, path := range args {
		doc, err := loadDocument(path)
		if err != nil {
			color.Red("sourcemap: failed to read %s: %v", path, err)
			return err
		}

		lineOffset := int32(0)
		if i > 0 {
			lineOffset = mergeLineOffset
		}

		if err := container.AddVLQMappings(doc.Mappings, doc.Sources, doc.Names, lineOffset, mergeColumnOffset); err != nil {
			color.Red("sourcemap: failed to merge %s: %v", path, err)
			return err
		}

		slog.Info("merged source map",
			"path", path,
			"sources_added", len(doc.Sources),
			"segments_total", container.SegmentCount,
		)
	}

	result, err := container.Stringify()
	if err != nil {
		return err
	}

	out := &document{
		Version:  3,
		Sources:  result.Sources,
		Names:    result.Names,
		Mappings: result.Mappings,
	}

	if mergeOut == "" {
		fmt.Println(result.Mappings)
		return nil
	}

	if err := writeDocument(mergeOut, out); err != nil {
		return err
	}
	color.Green("sourcemap: wrote %s (%d segments)", mergeOut, container.SegmentCount)
	return nil
}
