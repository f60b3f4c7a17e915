package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/lifecost/internal/cli"
	"github.com/theirongolddev/lifecost/internal/pipeline"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported countries with their default estimate",
	RunE:  runCountries,
}

var countriesShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show a country's inputs with defaults and ranges",
	Args:  cobra.ExactArgs(1),
	RunE:  runCountriesShow,
}

func init() {
	countriesCmd.AddCommand(countriesShowCmd)
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		est, err := pipeline.Estimate(p, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Code, err)
		}
		extras := make([]string, 0, len(p.Extras))
		for _, x := range p.Extras {
			extras = append(extras, x.Category)
		}
		rows = append(rows, []string{
			p.Code,
			p.Name,
			p.CurrencySymbol,
			strings.Join(extras, ", "),
			cli.FormatMoney(est.MonthlyIncome, p.CurrencySymbol, p.Decimals),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Countries",
		Headers:  []string{"Code", "Name", "Currency", "Extras", "Default Income / mo"},
		Rows:     rows,
		LeftCols: []int{1, 2, 3},
	}))
	fmt.Println()
	return nil
}

func runCountriesShow(_ *cobra.Command, args []string) error {
	p, err := pipeline.FindProfile(profiles, args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s (%s)  %s", p.Name, p.Code, p.CurrencySymbol)))
	fmt.Println()

	for _, section := range p.Sections() {
		var rows [][]string
		for _, f := range p.Fields {
			if f.Section != section {
				continue
			}
			maxCell := "-"
			if f.HasMax {
				maxCell = cli.FormatField(f, f.Max, p.CurrencySymbol, p.Decimals)
			}
			rows = append(rows, []string{
				f.Label,
				f.Key,
				cli.FormatField(f, f.Default, p.CurrencySymbol, p.Decimals),
				cli.FormatField(f, f.Min, p.CurrencySymbol, p.Decimals),
				maxCell,
				cli.FormatField(f, f.Step, p.CurrencySymbol, p.Decimals),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:    section,
			Headers:  []string{"Input", "Key", "Default", "Min", "Max", "Step"},
			Rows:     rows,
			LeftCols: []int{1},
		}))
		fmt.Println()
	}
	return nil
}
