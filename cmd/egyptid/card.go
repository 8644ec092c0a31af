package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/egyptid/core/logger"
	"github.com/dmitrymomot/egyptid/pkg/card"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
)

func newCardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Bank card numbers",
	}
	cmd.AddCommand(
		newCardValidateCmd(a),
		newCardTraceCmd(a),
		newCardGenerateCmd(a),
	)
	return cmd
}

type cardView struct {
	Valid     bool   `json:"valid"`
	Masked    string `json:"masked,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Brand     string `json:"brand"`
	Error     string `json:"error,omitempty"`
}

func newCardValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <number>",
		Short: "Check length, brand and Luhn checksum of a card number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			res := card.Check(raw)

			a.log.Info("card checked",
				logger.Component("card"),
				logger.Action("validate"),
				logger.MaskedPAN(res.Number),
				logger.Key("brand", string(res.Brand)),
				logger.Result(verdict(res.Valid)),
			)

			view := cardView{
				Valid:  res.Valid,
				Masked: res.Masked,
				Brand:  string(res.Brand),
				Error:  a.text(res.Error),
			}
			if res.Number != "" {
				view.Formatted = card.Format(luhn.Mask(res.Number))
			}

			fields := []field{
				{"valid", view.Valid},
				{"brand", view.Brand},
				{"masked", view.Formatted},
			}
			if !res.Valid {
				fields = append(fields, field{"error", view.Error})
			}

			if err := a.render(cmd.OutOrStdout(), view, fields); err != nil {
				return err
			}
			if !res.Valid {
				return errRejected
			}
			return nil
		},
	}
}

type stepView struct {
	Position   int  `json:"position"`
	Digit      int  `json:"digit"`
	Doubled    bool `json:"doubled"`
	Value      int  `json:"value"`
	RunningSum int  `json:"running_sum"`
}

type traceView struct {
	Input      string     `json:"input"`
	Steps      []stepView `json:"steps"`
	TotalSum   int        `json:"total_sum"`
	Valid      bool       `json:"valid"`
	CheckDigit int        `json:"check_digit"`
}

func newCardTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <number>",
		Short: "Show each digit's contribution to the Luhn checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := luhn.Trace(strings.Join(args, " "))

			a.log.Debug("checksum traced",
				logger.Component("luhn"),
				logger.Action("trace"),
				logger.Count("steps", len(res.Steps)),
				logger.Result(verdict(res.IsValid)),
			)

			view := traceView{
				Input:      res.Input,
				Steps:      make([]stepView, len(res.Steps)),
				TotalSum:   res.TotalSum,
				Valid:      res.IsValid,
				CheckDigit: res.CheckDigit,
			}
			for i, s := range res.Steps {
				view.Steps[i] = stepView(s)
			}

			w := cmd.OutOrStdout()
			if a.json {
				return a.render(w, view, nil)
			}

			fmt.Fprintf(w, "%-4s %-5s %-7s %-5s %s\n", "pos", "digit", "doubled", "value", "running")
			for _, s := range view.Steps {
				fmt.Fprintf(w, "%-4d %-5d %-7t %-5d %d\n", s.Position, s.Digit, s.Doubled, s.Value, s.RunningSum)
			}
			return a.render(w, view, []field{
				{"total", view.TotalSum},
				{"valid", view.Valid},
				{"check digit", view.CheckDigit},
			})
		},
	}
}

func newCardGenerateCmd(a *app) *cobra.Command {
	var (
		prefix string
		length int
		count  int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Luhn-valid test card numbers",
		Long:  "Generate Luhn-valid card numbers for testing. They are not real cards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			numbers := make([]string, 0, count)
			for range count {
				n, err := luhn.GenerateTestNumber(prefix, length)
				if err != nil {
					a.log.Error("generate test number failed",
						logger.Component("luhn"),
						logger.Action("generate"),
						logger.Error(err),
					)
					return err
				}
				numbers = append(numbers, n)
			}

			a.log.Debug("test numbers generated",
				logger.Component("luhn"),
				logger.Action("generate"),
				logger.Key("prefix", prefix),
				logger.Count("count", len(numbers)),
			)

			w := cmd.OutOrStdout()
			if a.json {
				return a.render(w, numbers, nil)
			}
			for _, n := range numbers {
				if _, err := fmt.Fprintln(w, n); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "4", "issuer prefix, digits only")
	cmd.Flags().IntVar(&length, "length", a.cfg.CardLength, "total number of digits")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many numbers to generate")
	return cmd
}

func verdict(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
