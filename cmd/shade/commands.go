package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/shade/pkg/archive"
	"github.com/arthur-debert/shade/pkg/config"
	"github.com/arthur-debert/shade/pkg/logging"
	"github.com/arthur-debert/shade/pkg/pipeline"
)

var relocateCmd = &cobra.Command{
	Use:   "relocate INPUT OUTPUT",
	Short: "Rewrite an archive through the configured relocation rules",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		defer logging.LogDuration(start, "relocate")

		p, err := loadPipeline()
		if err != nil {
			return err
		}

		processor := archive.NewProcessor(p)
		stats, err := processor.Process(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s -> %s\n", formatBold("Relocated"), args[0], args[1])
		fmt.Printf("  entries:   %d\n", stats.Entries)
		fmt.Printf("  relocated: %d\n", stats.RelocatedPaths)
		fmt.Printf("  rewritten: %d\n", stats.RewrittenSources)
		if stats.SkippedConflicts > 0 {
			fmt.Printf("  skipped:   %d (name conflicts)\n", stats.SkippedConflicts)
		}
		return nil
	},
}

var checkAsClass bool

var checkCmd = &cobra.Command{
	Use:   "check NAME...",
	Short: "Show how paths or class names would be relocated, without touching any archive",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline()
		if err != nil {
			return err
		}

		for _, name := range args {
			var relocated string
			var moved bool
			if checkAsClass {
				relocated, moved = p.RelocateClass(name)
			} else {
				relocated, moved = p.RelocatePath(name)
			}
			if moved {
				fmt.Printf("%s -> %s\n", name, relocated)
			} else {
				fmt.Printf("%s (unchanged)\n", name)
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkAsClass, "class", false, "Treat arguments as class names rather than paths")
}

func loadPipeline() (*pipeline.Pipeline, error) {
	path := rulesPath
	if path == "" {
		path = config.DefaultRulesPath()
	}

	rules, err := config.LoadRules(path)
	if err != nil {
		return nil, err
	}
	return config.BuildPipeline(rules)
}
