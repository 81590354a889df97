package cmd

import (
	"fmt"
	"os"

	"beven/internal/cli"
	"beven/internal/engine"
	"beven/internal/export"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the projection report as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "beven-report.csv", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}

	be, err := engine.Solve(p)
	if err != nil {
		return err
	}

	start, explicit := engine.StartOrders(p, be)
	res, err := engine.Project(p, start)
	if err != nil {
		return err
	}

	report := export.Report{
		Params:        p,
		Result:        res,
		StartOrders:   start,
		StartExplicit: explicit,
		Currency:      cli.Currency(),
	}
	if err := export.WriteFile(flagOutput, report); err != nil {
		return err
	}

	fmt.Println()
	if err := export.WriteText(os.Stdout, report); err != nil {
		return err
	}
	fmt.Printf("\n  Wrote %d monthly and %d weekly rows to %s\n",
		len(res.Months), len(res.Weeks), flagOutput)
	return nil
}
