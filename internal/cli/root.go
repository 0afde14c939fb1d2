package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tacogips/create-repro/internal/app"
	"github.com/tacogips/create-repro/internal/config"
	"github.com/tacogips/create-repro/internal/debug"
	"github.com/tacogips/create-repro/internal/project"
	"github.com/tacogips/create-repro/internal/publish"
	"github.com/tacogips/create-repro/internal/registry"
	"github.com/tacogips/create-repro/internal/shell"
	"github.com/tacogips/create-repro/internal/templates"
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
)

// Scaffold flags
var (
	scaffoldForce       bool
	scaffoldTemplateDir string
	scaffoldPackage     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "create-repro",
	Short: "Scaffold a minimal reproduction project",
	Long: `create-repro creates a small project for reproducing an issue against a
specific release of a dependency.

It asks for:
  1. A project name
  2. The dependency version (picked from the registry when reachable)
  3. A package manager
  4. Whether to publish the project as a public GitHub repository

The bundled template is copied into a new directory, the dependency is pinned
to the chosen version in package.json, and the commands to get started are
printed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: runScaffold,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)

	// Scaffold flags
	rootCmd.Flags().BoolVar(&scaffoldForce, FlagForce, false, DescForce)
	rootCmd.Flags().StringVar(&scaffoldTemplateDir, FlagTemplateDir, "", DescTemplateDir)
	rootCmd.Flags().StringVar(&scaffoldPackage, FlagPackage, "", DescPackage)

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the configuration file and applies the global flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(globalConfigPath)
	if err != nil {
		return nil, app.NewConfigError("failed to load configuration", err)
	}
	if cfg.Debug {
		debug.SetDebug(true)
	}
	if cfg.NoColor {
		globalNoColor = true
		debug.SetNoColor(true)
	}
	debug.DebugJSON("[cli] Config", cfg)
	return cfg, nil
}

// applyScaffoldFlags overrides configuration values with explicitly set flags.
func applyScaffoldFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed(FlagPackage) {
		cfg.Package = scaffoldPackage
	}
	if cmd.Flags().Changed(FlagTemplateDir) {
		cfg.TemplateDir = scaffoldTemplateDir
	}
}

// newWorkflow wires the scaffolding workflow for cfg, creating projects in cwd.
func newWorkflow(cfg *config.Config, cwd string) (*app.Workflow, error) {
	tmpl, err := templates.Open(cfg.TemplateDir)
	if err != nil {
		return nil, app.NewConfigError("failed to open template", err)
	}

	return &app.Workflow{
		Resolver:  newRegistryClient(cfg),
		Collector: newSurveyCollector(cfg.NamePrefix),
		Materializer: project.New(project.Options{
			Template:   tmpl,
			Dependency: cfg.Package,
			BaseDir:    cwd,
			Force:      scaffoldForce,
			Ignore:     project.DefaultIgnorePatterns(),
		}),
		Publisher: publish.New(publish.Options{
			Runner:        shell.NewExecRunner(),
			CommitMessage: cfg.CommitMessage,
			Stdout:        stdout,
			Stderr:        stderr,
		}),
		Notifier:  consoleNotifier{},
		Out:       stdout,
		StepStyle: styleStep,
		Cwd:       cwd,
	}, nil
}

// newRegistryClient creates the version lookup client for cfg.
func newRegistryClient(cfg *config.Config) *registry.Client {
	return registry.New(cfg.Package,
		registry.WithBaseURL(cfg.RegistryURL),
		registry.WithTimeout(cfg.HTTPTimeout),
	)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyScaffoldFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return app.NewConfigError("invalid configuration", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return app.NewMaterializeError("failed to determine working directory", err)
	}

	wf, err := newWorkflow(cfg, cwd)
	if err != nil {
		return err
	}

	printHeader("create-repro")
	_, err = wf.Scaffold(cmd.Context())
	return err
}

// printError prints an error message to stderr
func printError(err error) {
	var appErr *app.AppError
	if errors.As(err, &appErr) && appErr.Type == app.InputAborted {
		printErrorMsg("Aborted")
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}
