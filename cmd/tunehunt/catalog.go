package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/platform/tui"
	"github.com/vovakirdan/tunehunt/internal/storage"
)

var (
	flagCatalogDB   string
	flagCatalogTUI  bool
	flagCatalogLimit int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local name catalog",
	Long: `The catalog is a SQLite database of real artist names and track titles.
Select it as the content source with content.source: catalog.

Examples:
  tunehunt catalog import names.json
  tunehunt catalog show
  tunehunt catalog show --tui
  tunehunt catalog remove artist "Some Band"
  tunehunt catalog clear`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import names from a JSON file",
	Long: `Import {"artists": [...], "tracks": [...]} into the catalog.
Names already present are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runCatalogImport,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show catalog contents",
	Args:  cobra.NoArgs,
	Run:   runCatalogShow,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove <artist|track> <name>",
	Short: "Remove one name from the catalog",
	Args:  cobra.ExactArgs(2),
	Run:   runCatalogRemove,
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every name from the catalog",
	Args:  cobra.NoArgs,
	Run:   runCatalogClear,
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&flagCatalogDB, "db", "", "Catalog database path (default: content.catalog_path)")
	catalogShowCmd.Flags().BoolVar(&flagCatalogTUI, "tui", false, "Browse interactively")
	catalogShowCmd.Flags().IntVar(&flagCatalogLimit, "limit", 10, "Names listed per kind")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)
	catalogCmd.AddCommand(catalogClearCmd)
}

// openCatalog opens the catalog named by --db or the config.
func openCatalog() *storage.Store {
	path := flagCatalogDB
	if path == "" {
		a := mustLoad(os.Stderr)
		path = a.cfg.Content.CatalogPath
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runCatalogImport(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	names, err := content.DecodeNames(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openCatalog()
	defer store.Close()

	added, err := store.Import(context.Background(), names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d new name(s) from %s\n", added, args[0])
}

func runCatalogShow(_ *cobra.Command, _ []string) {
	store := openCatalog()
	defer store.Close()

	if flagCatalogTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunCatalog(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	stats, err := store.Stats(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog")
	fmt.Println()
	fmt.Printf("  Artists: %d\n", stats.Artists)
	fmt.Printf("  Tracks:  %d\n", stats.Tracks)
	if !stats.LastImported.IsZero() {
		fmt.Printf("  Last import: %s\n", stats.LastImported.Format("2006-01-02 15:04"))
	}

	if stats.Artists+stats.Tracks == 0 {
		fmt.Println()
		fmt.Println("The catalog is empty. Run 'tunehunt catalog import <file>' to add names.")
		return
	}

	for _, kind := range []storage.Kind{storage.KindArtist, storage.KindTrack} {
		entries, err := store.Entries(ctx, kind, flagCatalogLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("  %ss:\n", kind)
		for _, e := range entries {
			fmt.Printf("    %s\n", e.Name)
		}
	}
}

func runCatalogRemove(_ *cobra.Command, args []string) {
	kind := storage.Kind(args[0])
	if kind != storage.KindArtist && kind != storage.KindTrack {
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q (want artist or track)\n", args[0])
		os.Exit(1)
	}

	store := openCatalog()
	defer store.Close()

	removed, err := store.Remove(context.Background(), kind, args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !removed {
		fmt.Printf("No %s named %q in the catalog.\n", kind, args[1])
		return
	}
	fmt.Printf("Removed %s %q\n", kind, args[1])
}

func runCatalogClear(_ *cobra.Command, _ []string) {
	store := openCatalog()
	defer store.Close()

	if err := store.Clear(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Catalog cleared.")
}
