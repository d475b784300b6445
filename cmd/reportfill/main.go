// Package main provides the CLI entry point for reportfill.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/reportfill-go/internal/app"
	"github.com/ukaji3/reportfill-go/internal/config"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/output"
)

var (
	configPath string
	envFile    string
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reportfill",
		Short: "Edit a spreadsheet template in the browser and download or email the result",
		Long: `reportfill serves a browser spreadsheet editor backed by an xlsx template.
Edited cells are written onto a fresh copy of the template, which is returned
as a download or sent as an email attachment.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded over the environment")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the template as editor grid JSON",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	exportCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	fillCmd := &cobra.Command{
		Use:   "fill [cells.json]",
		Short: "Apply a saved submission to the template and write the workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runFill,
	}
	fillCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: generated report name)")

	rootCmd.AddCommand(serveCmd, exportCmd, fillCmd)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, err
	}
	app.ConfigureLogging(cfg)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), cfg)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	wb, err := app.NewReportUseCase(cfg).Grid(cmd.Context())
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runFill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}

	var sub models.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return fmt.Errorf("parse submission %s: %w", args[0], err)
	}

	res, err := app.NewReportUseCase(cfg).Export(cmd.Context(), sub.Cells)
	if err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}

	path := outputPath
	if path == "" {
		path = res.Filename
	}
	if err := os.WriteFile(path, res.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cells)\n", path, len(sub.Cells))
	return nil
}
