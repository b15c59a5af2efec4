package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Hrothnar/linkzip/internal/version"
	"github.com/Hrothnar/linkzip/pkg/archive"
	"github.com/Hrothnar/linkzip/pkg/cobrax/topics"
	"github.com/Hrothnar/linkzip/pkg/config"
	"github.com/Hrothnar/linkzip/pkg/core"
	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/filesystem"
	"github.com/Hrothnar/linkzip/pkg/filter"
	"github.com/Hrothnar/linkzip/pkg/logging"
	"github.com/Hrothnar/linkzip/pkg/shortcut"
	"github.com/Hrothnar/linkzip/pkg/upload"
)

//go:embed docs
var docsFS embed.FS

var (
	verbosity    int
	split        bool
	jobs         int
	cfgFile      string
	uploadTarget string

	rootCmd = &cobra.Command{
		Use:   "linkzip [--split] <source-folder> <output>",
		Short: "Archive the directories a folder's shortcuts point at",
		Long: `linkzip backs up the targets of the shortcut files found in a source
folder. By default every target tree is merged into a single zip, each
shortcut's files placed under its display name. With --split, one zip
per shortcut is written into the output directory instead.

Hidden and system files and desktop.ini are excluded; additional
exclusions and the recognized shortcut-name suffixes are configurable.`,
		Args: cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBackup,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/linkzip/linkzip.toml)")

	rootCmd.Flags().BoolVar(&split, "split", false, "Write one archive per shortcut into the output directory")
	rootCmd.Flags().IntVar(&jobs, "jobs", 0, "Split-mode worker count (default from config; 1 = sequential)")
	rootCmd.Flags().StringVar(&uploadTarget, "upload", "", "Upload finished archives to s3://bucket[/prefix]")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(genconfigCmd)

	if tm, err := topics.NewFromFS(mustSub(docsFS, "docs"), &topics.GlamourRenderer{}); err == nil {
		rootCmd.AddCommand(tm.NewCommand())
	}
}

func runBackup(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd")
	sourceDir, output := args[0], args[1]

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()

	opts := core.Options{
		SourceDir: sourceDir,
		Output:    output,
		Jobs:      jobs,
		FS:        fsys,
		Filter: filter.New(filter.Options{
			Hidden:   cfg.Exclude.Hidden,
			System:   cfg.Exclude.System,
			Names:    cfg.Exclude.Names,
			Patterns: cfg.Exclude.Patterns,
		}),
		Resolvers: []shortcut.Resolver{
			shortcut.NewLibraryResolver(fsys, cfg.Shortcuts.StripSuffixes),
			shortcut.NewSymlinkResolver(fsys, cfg.Shortcuts.Extensions, cfg.Shortcuts.StripSuffixes),
		},
		Backend: archive.NewZipBackend(archive.ParseCompression(cfg.Archive.Compression)),
	}

	if opts.Jobs == 0 {
		opts.Jobs = cfg.Run.Jobs
	}

	// A shared overwritten progress line assumes a single active job;
	// parallel jobs each get their own plain stream instead.
	if split && opts.Jobs > 1 {
		opts.Progress = func() archive.Progress { return archive.NewPlainProgress(os.Stdout) }
	} else {
		opts.Progress = func() archive.Progress { return archive.NewProgress(os.Stdout) }
	}

	if uploadTarget != "" {
		uploader, err := upload.NewS3(cmd.Context(), uploadTarget)
		if err != nil {
			return err
		}
		opts.Uploader = uploader
	}

	logger.Info().
		Str("source", sourceDir).
		Str("output", output).
		Bool("split", split).
		Int("jobs", opts.Jobs).
		Msg("Starting backup")

	var result *core.Result
	if split {
		result, err = core.RunSplit(cmd.Context(), opts)
	} else {
		result, err = core.RunSingle(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}

	logger.Info().Int("archives", len(result.Archives)).Msg("Backup finished")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linkzip version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as TOML. With --write the
config is placed at its user location instead, ready for editing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")
		if !write {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultTOML())
			return nil
		}

		path := config.UserConfigPath()
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrInvalidInput, "config already exists at %s", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create config directory for %s", path)
		}
		if err := os.WriteFile(path, []byte(config.DefaultTOML()), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config to %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	genconfigCmd.Flags().BoolP("write", "w", false, "Write the config to its user location instead of stdout")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
