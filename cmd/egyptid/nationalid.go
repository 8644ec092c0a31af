package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/egyptid/core/logger"
	"github.com/dmitrymomot/egyptid/pkg/classify"
	"github.com/dmitrymomot/egyptid/pkg/nationalid"
)

type profileView struct {
	Age        int    `json:"age"`
	AgeGroup   string `json:"age_group"`
	Century    string `json:"century"`
	Generation string `json:"generation"`
	Zodiac     string `json:"zodiac"`
	Symbol     string `json:"zodiac_symbol"`
}

type nationalIDView struct {
	Number          string      `json:"number"`
	BirthDate       string      `json:"birth_date"`
	GovernorateCode string      `json:"governorate_code"`
	Governorate     string      `json:"governorate"`
	Gender          string      `json:"gender"`
	Profile         profileView `json:"profile"`
}

func newNationalIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "nid <number>",
		Aliases: []string{"national-id"},
		Short:   "Decode a 14-digit national ID",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := nationalid.Parse(strings.Join(args, ""), a.now())
			if err != nil {
				a.log.Info("national id rejected",
					logger.Component("nationalid"),
					logger.Action("parse"),
					logger.Error(err),
				)
				return err
			}

			a.log.Info("national id parsed",
				logger.Component("nationalid"),
				logger.Action("parse"),
				logger.Governorate(id.GovernorateCode),
			)

			view := nationalIDView{
				Number:          id.Number,
				BirthDate:       id.BirthDate.Format(dateLayout),
				GovernorateCode: id.GovernorateCode,
				Governorate:     a.text(id.Governorate),
				Gender:          a.text(id.Gender.Text()),
				Profile:         a.profile(id.Profile),
			}

			fields := []field{
				{"number", view.Number},
				{"birth date", view.BirthDate},
				{"governorate", view.Governorate},
				{"gender", view.Gender},
			}
			fields = append(fields, view.Profile.fields()...)
			return a.render(cmd.OutOrStdout(), view, fields)
		},
	}
}

func (a *app) profile(p classify.Profile) profileView {
	return profileView{
		Age:        p.Age,
		AgeGroup:   a.text(p.AgeGroup),
		Century:    a.text(p.Century),
		Generation: a.text(p.Generation.Name),
		Zodiac:     a.text(p.Zodiac.Name),
		Symbol:     p.Zodiac.Symbol,
	}
}

func (p profileView) fields() []field {
	return []field{
		{"age", p.Age},
		{"age group", p.AgeGroup},
		{"century", p.Century},
		{"generation", p.Generation},
		{"zodiac", p.Zodiac + " " + p.Symbol},
	}
}
