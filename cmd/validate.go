package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/catalog"
	"github.com/papapumpkin/strata/internal/config"
	"github.com/papapumpkin/strata/internal/groups"
	"github.com/papapumpkin/strata/internal/ui"
)

var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration, vocabulary, catalog and category order",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	printer := ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load()
	printer.Validation("config", err)
	if err != nil {
		return errValidation
	}
	ok := true

	v, err := loadVocabulary(cfg.VocabularyPath)
	if err == nil {
		err = v.Validate()
	}
	printer.Validation("vocabulary", err)
	ok = ok && err == nil

	cat, err := loadCatalog(cfg.CatalogPath)
	printer.Validation("catalog", err)
	ok = ok && err == nil

	if !ok {
		return errValidation
	}

	reg, err := groups.Bootstrap(groups.EngineState{
		Namespace:  cfg.Namespace,
		Vocabulary: v,
		Provider:   catalog.NewProvider(cat, nil),
		Lookup:     cat,
		Order:      cfg.CategoryOrder,
	})
	printer.Validation("category order", err)
	if err != nil {
		return errValidation
	}

	for _, c := range reg.Categories() {
		if c.Icon().IsEmpty() {
			printer.Warn(fmt.Sprintf("%s: icon item not in catalog", c.ID()))
		}
	}
	printer.Info(fmt.Sprintf("%d categories, %d items", len(reg.Categories()), cat.Registry().Len()))
	return nil
}
