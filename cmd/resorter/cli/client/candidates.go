package client

import (
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/mwantia/resorter/internal/agent"
	"github.com/mwantia/resorter/internal/intake"
	"github.com/mwantia/resorter/internal/session"
	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/render"
	"github.com/mwantia/resorter/pkg/sorter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCandidatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"c"},
		Short:   "Manage candidates",
		Long:    "Add resume documents, list and filter stored candidates and sort their files into category directories.",
	}

	cmd.AddCommand(NewCandidatesIntakeCommand())
	cmd.AddCommand(NewCandidatesListCommand())
	cmd.AddCommand(NewCandidatesFilterCommand())
	cmd.AddCommand(NewCandidatesSortCommand())

	return cmd
}

func NewCandidatesIntakeCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "intake <path>...",
		Short: "Add resume documents",
		Long:  "Reads, classifies and stores resume documents. Directories are scanned for supported documents.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				pterm.Warning.Println("No supported documents found")
				return nil
			}

			return withAgent(func(ctx context.Context, a *agent.ResorterAgent) error {
				var bar *pb.ProgressBar
				if !quiet {
					bar = pb.StartNew(len(paths))
				}

				summary := a.Pipeline().Run(ctx, paths, func(intake.Result) {
					if bar != nil {
						bar.Increment()
					}
				})
				if bar != nil {
					bar.Finish()
				}

				for _, r := range summary.Results {
					switch r.Status {
					case models.StatusFailed:
						pterm.Error.Printfln("%s: %s", r.Path, r.Message)
					case models.StatusSkipped:
						pterm.Info.Printfln("%s: %s", r.Path, r.Message)
					}
				}

				pterm.Success.Printfln("Added %s, skipped %s, failed %s (batch %s)",
					humanize.Comma(int64(summary.Added)),
					humanize.Comma(int64(summary.Skipped)),
					humanize.Comma(int64(summary.Failed)),
					summary.BatchID)
				return render.WriteTerminal(os.Stdout, render.Cards(summary.Candidates()))
			})
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable the progress bar")

	return cmd
}

func NewCandidatesListCommand() *cobra.Command {
	var htmlPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgent(func(ctx context.Context, a *agent.ResorterAgent) error {
				r := a.Controller().Dispatch(ctx, session.Refresh{})
				if r.Message != "" {
					return fmt.Errorf("%s", r.Message)
				}

				pterm.Info.Printfln("%s candidates", humanize.Comma(int64(len(r.Candidates))))
				return output(r.Cards, htmlPath)
			})
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "Write the cards as HTML to this file")

	return cmd
}

func NewCandidatesFilterCommand() *cobra.Command {
	var htmlPath string
	var presetName string
	var saveName string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter stored candidates",
		Long: `Filter stored candidates by category, age, experience, salary and education.

Bounds are inclusive and optional. A candidate without salary information
is never excluded by the salary bounds. Education accepts level names
(secondary, bachelor, master, doctoral) or numbers 0-4.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags before touching the store
			if _, err := filterConfig(cmd, filter.Config{}); err != nil {
				return err
			}

			return withAgent(func(ctx context.Context, a *agent.ResorterAgent) error {
				base := filter.Config{}
				if presetName != "" {
					preset, err := a.Store().GetFilterPreset(ctx, presetName)
					if err != nil {
						return fmt.Errorf("failed to load preset '%s': %w", presetName, err)
					}
					base = preset
				}

				cfg, err := filterConfig(cmd, base)
				if err != nil {
					return err
				}

				if saveName != "" {
					if err := a.Store().SaveFilterPreset(ctx, saveName, "", cfg); err != nil {
						return fmt.Errorf("failed to save preset '%s': %w", saveName, err)
					}
					pterm.Success.Printfln("Saved filter preset '%s'", saveName)
				}

				c := a.Controller()
				c.Dispatch(ctx, session.Refresh{})
				r := c.Dispatch(ctx, session.ApplyFilter{Config: cfg})
				if r.Message != "" {
					pterm.Warning.Println(r.Message)
				} else {
					pterm.Info.Printfln("%s matching candidates", humanize.Comma(int64(len(r.Candidates))))
				}

				return output(r.Cards, htmlPath)
			})
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write the cards as HTML to this file")
	cmd.Flags().StringVar(&presetName, "preset", "", "Start from a saved filter preset")
	cmd.Flags().StringVar(&saveName, "save", "", "Save the resulting filter as preset")

	return cmd
}

func NewCandidatesSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort candidate documents into category directories",
		Long:  "Moves every stored candidate document into a directory named after its category. Existing files are never overwritten.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgent(func(ctx context.Context, a *agent.ResorterAgent) error {
				c := a.Controller()
				c.Dispatch(ctx, session.Refresh{})
				r := c.Dispatch(ctx, session.SortFiles{})

				for _, result := range r.Sorted {
					switch result.Outcome {
					case sorter.Moved:
						pterm.Success.Printfln("%s -> %s", result.Source, result.Destination)
					case sorter.DestinationExists:
						pterm.Info.Printfln("%s already exists", result.Destination)
					case sorter.SourceMissing:
						pterm.Warning.Printfln("%s is missing", result.Source)
					}
				}

				pterm.Info.Println(r.Message)
				return nil
			})
		},
	}

	return cmd
}

func output(cards []render.Card, htmlPath string) error {
	if htmlPath == "" {
		return render.WriteTerminal(os.Stdout, cards)
	}

	f, err := os.Create(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", htmlPath, err)
	}
	defer f.Close()

	if err := render.WriteHTML(f, cards); err != nil {
		return fmt.Errorf("failed to render %s: %w", htmlPath, err)
	}
	pterm.Success.Printfln("Wrote %d cards to %s", len(cards), htmlPath)
	return nil
}

// expandPaths replaces directories with the supported documents they contain
func expandPaths(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		found, err := intake.Discover(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
