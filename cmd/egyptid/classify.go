package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/egyptid/core/logger"
	"github.com/dmitrymomot/egyptid/pkg/classify"
)

const dateLayout = time.DateOnly

type generationRangeView struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var generation string

	cmd := &cobra.Command{
		Use:   "classify [YYYY-MM-DD]",
		Short: "Classify a birth date by age group, century, generation and zodiac sign",
		Example: "  egyptid classify 1990-01-01\n" +
			"  egyptid classify --generation \"Generation Z\"",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if generation != "" {
				start, end := classify.GenerationRange(generation)
				view := generationRangeView{Label: generation, Start: start, End: end}
				return a.render(w, view, []field{
					{"generation", view.Label},
					{"years", fmt.Sprintf("%d-%d", view.Start, view.End)},
				})
			}

			if len(args) == 0 {
				return fmt.Errorf("a birth date or --generation is required")
			}

			birth, err := time.Parse(dateLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}

			a.log.Debug("birth date classified",
				logger.Component("classify"),
				logger.Action("describe"),
			)

			view := a.profile(classify.Describe(birth, a.now()))
			return a.render(w, view, view.fields())
		},
	}

	cmd.Flags().StringVar(&generation, "generation", "", "print the birth years of a generation label")
	return cmd
}
