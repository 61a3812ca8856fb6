package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FrenchMajesty/bow-classifier/internal/config"
	"github.com/FrenchMajesty/bow-classifier/internal/logging"
	"github.com/FrenchMajesty/bow-classifier/internal/pipeline"
	"github.com/FrenchMajesty/bow-classifier/pkg/report"
)

var version = "dev"

type runOptions struct {
	configPath string
	trainPath  string
	testPath   string
	outputDir  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nbbow",
		Short: "Naive Bayes bag-of-words fact classifier",
		Long: `nbbow trains naive Bayes bag-of-words classifiers on a labeled TSV
dataset and evaluates them on a held-out set.

For every configured model it writes trace_<model>.txt, eval_<model>.txt
and summary_<model>.json to the output directory.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Train every configured model and evaluate it on the test set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluation(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the YAML run configuration")
	flags.StringVar(&opts.trainPath, "train", "", "training dataset (overrides config)")
	flags.StringVar(&opts.testPath, "test", "", "test dataset (overrides config)")
	flags.StringVarP(&opts.outputDir, "out", "o", "", "output directory (overrides config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nbbow %s\n", version)
		},
	}
}

func runEvaluation(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.trainPath != "" {
		cfg.Training.Path = opts.trainPath
	}
	if opts.testPath != "" {
		cfg.Test.Path = opts.testPath
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	logger, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	runner, err := pipeline.NewRunner(cfg, logger, report.NewFileWriter(cfg.OutputDir))
	if err != nil {
		return err
	}

	results, err := runner.Run(cmd.Context())
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	for _, result := range results {
		r := result.Evaluation.Report
		fmt.Fprintf(out, "%s  accuracy=%s  f1(yes)=%s  f1(no)=%s\n",
			result.Model.Name, report.FormatFloat(r.Accuracy), report.FormatFloat(r.True.F1), report.FormatFloat(r.False.F1))
	}
	return nil
}
