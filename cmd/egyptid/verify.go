package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/egyptid/core/logger"
	"github.com/dmitrymomot/egyptid/core/sanitizer"
	"github.com/dmitrymomot/egyptid/core/validator"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
)

// customer is a set of identifiers submitted together, for example on a
// signup form.
type customer struct {
	Name       string `json:"name,omitempty" sanitize:"name,max:100" validate:"omitempty;min:2"`
	NationalID string `json:"national_id" sanitize:"national_id" validate:"required;len:14;eg_national_id"`
	Mobile     string `json:"mobile" sanitize:"mobile" validate:"required;eg_mobile"`
	Card       string `json:"-" sanitize:"card" validate:"omitempty;card"`
}

type verifyView struct {
	Valid      bool                       `json:"valid"`
	Customer   customer                   `json:"customer"`
	MaskedCard string                     `json:"masked_card,omitempty"`
	Errors     validator.ValidationErrors `json:"errors,omitempty"`
}

func newVerifyCmd(a *app) *cobra.Command {
	var c customer

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Normalize and validate a customer's identifiers together",
		Example: "  egyptid verify --nid 29001010100015 --mobile 01012345678\n" +
			"  egyptid verify --name \"مُحَمَّد\" --nid ٢٩٠٠١٠١٠١٠٠٠١٥ --mobile +201012345678 --card \"4111 1111 1111 1111\"",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sanitizer.SanitizeStruct(&c); err != nil {
				return err
			}

			view := verifyView{Customer: c}
			if c.Card != "" {
				view.MaskedCard = luhn.Mask(c.Card)
			}

			err := validator.ValidateStruct(&c)
			view.Errors = validator.ExtractValidationErrors(err)
			if err != nil && view.Errors == nil {
				return err
			}
			view.Valid = view.Errors.IsEmpty()

			a.log.Info("customer verified",
				logger.Component("verify"),
				logger.MaskedPAN(c.Card),
				logger.Count("errors", len(view.Errors)),
				logger.Result(verdict(view.Valid)),
			)

			fields := []field{
				{"valid", view.Valid},
				{"name", c.Name},
				{"national id", c.NationalID},
				{"mobile", c.Mobile},
				{"card", view.MaskedCard},
			}
			for _, e := range view.Errors {
				fields = append(fields, field{"error", e.Error()})
			}

			if err := a.render(cmd.OutOrStdout(), view, fields); err != nil {
				return err
			}
			if !view.Valid {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&c.Name, "name", "", "full name")
	cmd.Flags().StringVar(&c.NationalID, "nid", "", "14-digit national ID")
	cmd.Flags().StringVar(&c.Mobile, "mobile", "", "mobile number")
	cmd.Flags().StringVar(&c.Card, "card", "", "payment card number")
	return cmd
}
