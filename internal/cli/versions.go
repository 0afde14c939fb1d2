package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/create-repro/internal/registry"
)

// versionsCmd lists the published versions of the dependency
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List published versions of the dependency",
	Long: `List the versions of the dependency published to the registry, newest
first. The version tagged latest is marked.

Examples:
  create-repro versions
  create-repro versions --limit 0
  create-repro versions --stable
  create-repro versions --package typescript`,
	Args: cobra.NoArgs,
	RunE: runVersions,
}

// Versions command flags
var (
	versionsLimit   int
	versionsPackage string
	versionsStable  bool
)

func init() {
	versionsCmd.Flags().IntVar(&versionsLimit, FlagLimit, 20, DescLimit)
	versionsCmd.Flags().StringVar(&versionsPackage, FlagPackage, "", DescPackage)
	versionsCmd.Flags().BoolVar(&versionsStable, FlagStable, false, DescStable)
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(FlagPackage) {
		cfg.Package = versionsPackage
	}
	if versionsLimit < 0 {
		return fmt.Errorf("--%s must not be negative", FlagLimit)
	}

	client := newRegistryClient(cfg)
	printProgress(fmt.Sprintf("Fetching versions of %s", client.Package()))

	meta, err := client.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	catalog := listedVersions(meta, versionsStable)
	latest := meta.Latest()
	printSuccess(fmt.Sprintf("Found %d versions", len(catalog)))

	for _, line := range formatVersions(catalog, latest, versionsLimit) {
		fmt.Fprintln(stdout, line)
	}
	return nil
}

// listedVersions orders the published versions, keeping only stable
// releases when stable is set.
func listedVersions(meta *registry.Metadata, stable bool) registry.Catalog {
	catalog := registry.NewCatalog(meta.VersionList())
	if stable {
		return catalog.Stable()
	}
	return catalog
}

// formatVersions renders up to limit catalog entries, marking latest.
// A limit of 0 renders every entry.
func formatVersions(catalog registry.Catalog, latest string, limit int) []string {
	shown := catalog
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, v := range shown {
		if v == latest {
			lines = append(lines, v+" (latest)")
			continue
		}
		lines = append(lines, v)
	}
	if len(shown) < len(catalog) {
		lines = append(lines, fmt.Sprintf("... and %d more", len(catalog)-len(shown)))
	}
	return lines
}
