package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"a11y-lint/src/service/detector"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("a11y-lint %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List rule families and their rules",
		Run: func(cmd *cobra.Command, args []string) {
			registry := detector.NewRegistry()
			fmt.Printf("Registered rules: %d\n\n", registry.RuleCount())
			for _, fam := range registry.Families() {
				fmt.Printf("%s (%d rules)\n", fam.Name, len(fam.Rules))
				for _, rule := range fam.Rules {
					fmt.Printf("  - %s\n", rule.Name)
				}
			}
		},
	}
}
