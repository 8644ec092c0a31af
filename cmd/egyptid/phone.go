package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/egyptid/core/logger"
	"github.com/dmitrymomot/egyptid/pkg/phone"
)

type phoneView struct {
	National      string `json:"national"`
	E164          string `json:"e164"`
	International string `json:"international"`
	Carrier       string `json:"carrier"`
}

func newPhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>",
		Short: "Validate an Egyptian mobile number and detect its carrier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := phone.Parse(strings.Join(args, " "))
			if err != nil {
				a.log.Info("mobile number rejected",
					logger.Component("phone"),
					logger.Action("parse"),
					logger.Error(err),
				)
				return err
			}

			a.log.Info("mobile number parsed",
				logger.Component("phone"),
				logger.Action("parse"),
				logger.Carrier(n.Carrier.English),
			)

			view := phoneView{
				National:      n.National,
				E164:          n.E164,
				International: n.International,
				Carrier:       a.text(n.Carrier),
			}
			return a.render(cmd.OutOrStdout(), view, []field{
				{"national", view.National},
				{"e164", view.E164},
				{"international", view.International},
				{"carrier", view.Carrier},
			})
		},
	}
}
