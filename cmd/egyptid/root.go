package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/core/logger"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "egyptid",
		Short:         "Validate and inspect Egyptian identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.lang = i18n.ParseLang(a.langFlag)
			a.log.Debug("command started",
				logger.Action(cmd.CommandPath()),
				logger.Lang(string(a.lang)),
			)
		},
	}

	cmd.PersistentFlags().StringVar(&a.langFlag, "lang", a.cfg.Lang, "output language: ar, en or a weighted list such as ar-EG,en;q=0.5")
	cmd.PersistentFlags().BoolVar(&a.json, "json", false, "print results as JSON")

	cmd.AddCommand(
		newCardCmd(a),
		newNationalIDCmd(a),
		newPhoneCmd(a),
		newClassifyCmd(a),
		newVerifyCmd(a),
	)
	return cmd
}

// field is a label and value pair of the text output.
type field struct {
	label string
	value any
}

// render prints v as JSON when --json is set and as aligned fields otherwise.
func (a *app) render(w io.Writer, v any, fields []field) error {
	if a.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.label)+1)
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s  %v\n", width, f.label+":", f.value); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) text(t i18n.Text) string {
	return t.In(a.lang)
}
