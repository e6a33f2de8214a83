package client

import (
	"context"

	"github.com/mwantia/resorter/internal/agent"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved filter presets",
		Long:  "List and remove filter presets saved with 'candidates filter --save'.",
	}

	cmd.AddCommand(NewPresetListCommand())
	cmd.AddCommand(NewPresetRemoveCommand())

	return cmd
}

func NewPresetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List filter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgent(func(ctx context.Context, a *agent.ResorterAgent) error {
				presets, err := a.Store().ListFilterPresets(ctx)
				if err != nil {
					return err
				}
				if len(presets) == 0 {
					pterm.Info.Println("No filter presets saved")
					return nil
				}

				data := pterm.TableData{{"Name", "Description", "Updated"}}
				for _, p := range presets {
					data = append(data, []string{p.Name, p.Description, p.UpdatedAt.Format("2006-01-02 15:04")})
				}
				return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
			})
		},
	}
}

func NewPresetRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a filter preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgent(func(ctx context.Context, a *agent.ResorterAgent) error {
				if err := a.Store().DeleteFilterPreset(ctx, args[0]); err != nil {
					return err
				}
				pterm.Success.Printfln("Removed filter preset '%s'", args[0])
				return nil
			})
		},
	}
}
