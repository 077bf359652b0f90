// Command campaignctl runs the campaign pipeline from the terminal: generation,
// calendar materialization, ad schedules, exports and demo data seeding.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/onegreenvn/campaign-generator-backend/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	verbose  bool
	outPath  string
	envFile  string
	formPath string
)

var rootCmd = &cobra.Command{
	Use:   "campaignctl",
	Short: "Generate and export Thai marketing campaigns",
	Long: `campaignctl drives the campaign generator without the HTTP server.

Available commands:
  generate - Call the LLM for a preview or full campaign
  posts    - Materialize the post calendar of a generated campaign
  schedule - Allocate the ad budget of a campaign brief
  export   - Render a campaign as JSON, text or an Excel workbook
  seed     - Insert the demo organizations, products and services`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env") {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		cfg = config.Load()

		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Write output to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file")

	rootCmd.AddCommand(generateCmd, postsCmd, scheduleCmd, exportCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// output opens the --out file or stdout
func output() (io.WriteCloser, error) {
	if outPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outPath, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeJSON(v interface{}) error {
	w, err := output()
	if err != nil {
		return err
	}
	defer w.Close()

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
