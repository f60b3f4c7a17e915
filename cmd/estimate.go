package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/lifecost/internal/cli"
	"github.com/theirongolddev/lifecost/internal/client"
	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/pipeline"
)

var (
	flagSet    []string
	flagFormat string
	flagRemote string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the income required for a lifestyle",
	Example: "  lifecost estimate --country nl --set house_cost=350000 --set tax_rate=37\n" +
		"  lifecost estimate -c za --format json\n" +
		"  lifecost estimate -c kr --remote 127.0.0.1:8788",
	RunE: runEstimate,
}

func init() {
	addEstimateFlags(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}

func addEstimateFlags(c *cobra.Command) {
	c.Flags().StringArrayVarP(&flagSet, "set", "s", nil, "Override an input, key=value (repeatable)")
	c.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table or json")
	c.Flags().StringVar(&flagRemote, "remote", "", "Compute on a running lifecost server at this address")
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	values, err := parseSets(flagSet)
	if err != nil {
		return err
	}

	var est model.Estimate
	if c := client.New(flagRemote); c != nil {
		est, err = c.Estimate(cmd.Context(), appCfg.General.DefaultCountry, values)
	} else {
		var p model.Profile
		if p, err = selectedProfile(); err == nil {
			est, err = pipeline.Estimate(p, values)
		}
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"country":   est.Country,
		"overrides": len(values),
		"remote":    flagRemote != "",
	}).Debug("estimate computed")

	switch flagFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	case "table", "":
		renderEstimate(os.Stdout, est)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or json)", flagFormat)
	}
}

// parseSets turns key=value pairs into input values.
func parseSets(pairs []string) (model.Values, error) {
	values := make(model.Values, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --set %q must be key=value", finance.ErrInvalidArgument, pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --set %s: %v", finance.ErrInvalidArgument, key, err)
		}
		values[key] = v
	}
	return values, nil
}

func renderEstimate(w io.Writer, est model.Estimate) {
	money := func(v float64) string { return cli.FormatMoney(v, est.CurrencySymbol, est.Decimals) }

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(strings.ToUpper(est.CountryName)+"  Lifestyle Cost"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderKeyValue("Required monthly income:", money(est.MonthlyIncome)))
	fmt.Fprintln(w, cli.RenderKeyValue("Required annual income: ", money(est.AnnualIncome)))
	fmt.Fprintln(w, cli.RenderKeyValue("Total monthly expenses: ", money(est.TotalMonthly)))
	fmt.Fprintln(w, cli.RenderKeyValue("Income tax rate:        ", cli.FormatRate(est.TaxRate)))
	fmt.Fprintln(w)

	left, right := est.Columns()
	rows := make([][]string, 0, len(right))
	for i := range right {
		row := []string{"", "", right[i].Category, money(right[i].Amount)}
		if i < len(left) {
			row[0], row[1] = left[i].Category, money(left[i].Amount)
		}
		rows = append(rows, row)
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:    "Monthly Expense Breakdown",
		Headers:  []string{"Category", "Amount", "Category", "Amount"},
		Rows:     rows,
		LeftCols: []int{2},
	}))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Expense Distribution")
	fmt.Fprint(w, cli.RenderShares(est.Shares(), 30))
	fmt.Fprintln(w)
}
