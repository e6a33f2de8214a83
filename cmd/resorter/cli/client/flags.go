package client

import (
	"fmt"

	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/spf13/cobra"
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("suitable", false, "Show suitable candidates")
	cmd.Flags().Bool("not-suitable", false, "Show candidates that are not suitable")

	cmd.Flags().Int("age-from", 0, "Minimum age")
	cmd.Flags().Int("age-to", 0, "Maximum age")
	cmd.Flags().Int("exp-from", 0, "Minimum years of experience")
	cmd.Flags().Int("exp-to", 0, "Maximum years of experience")
	cmd.Flags().Int("salary-from", 0, "Minimum salary")
	cmd.Flags().Int("salary-to", 0, "Maximum salary")

	cmd.Flags().StringSlice("education", nil, "Admitted education levels")
}

// filterConfig applies every flag the user set on top of base. Flags that
// were not given leave the corresponding part of base untouched.
func filterConfig(cmd *cobra.Command, base filter.Config) (filter.Config, error) {
	flags := cmd.Flags()
	cfg := base

	if flags.Changed("suitable") {
		cfg.ShowSuitable, _ = flags.GetBool("suitable")
	}
	if flags.Changed("not-suitable") {
		cfg.ShowNotSuitable, _ = flags.GetBool("not-suitable")
	}

	cfg.Age = rangeFlags(cmd, "age", cfg.Age)
	cfg.Experience = rangeFlags(cmd, "exp", cfg.Experience)
	cfg.Salary = rangeFlags(cmd, "salary", cfg.Salary)

	if flags.Changed("education") {
		values, _ := flags.GetStringSlice("education")

		cfg.Education = make([]resume.EducationLevel, 0, len(values))
		for _, value := range values {
			level, ok := resume.ParseEducationLevel(value)
			if !ok {
				return filter.Config{}, fmt.Errorf("unknown education level '%s'", value)
			}
			cfg.Education = append(cfg.Education, level)
		}
	}

	return cfg, nil
}

func rangeFlags(cmd *cobra.Command, prefix string, base filter.Range) filter.Range {
	from, to := base.From, base.To

	if cmd.Flags().Changed(prefix + "-from") {
		v, _ := cmd.Flags().GetInt(prefix + "-from")
		from = filter.Bound(v)
	}
	if cmd.Flags().Changed(prefix + "-to") {
		v, _ := cmd.Flags().GetInt(prefix + "-to")
		to = filter.Bound(v)
	}

	return filter.Between(from, to)
}
