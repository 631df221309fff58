// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/handsomejack/treetool/internal/config"
	"github.com/handsomejack/treetool/internal/ignore"
	"github.com/handsomejack/treetool/internal/output"
	"github.com/handsomejack/treetool/internal/services/clipboard"
	"github.com/handsomejack/treetool/internal/types"
	"github.com/handsomejack/treetool/internal/utils"
	"github.com/handsomejack/treetool/internal/walker"
)

const (
	outputFlagName     = "output"
	statsFlagName      = "stats"
	colorFlagName      = "color"
	depthFlagName      = "depth"
	dirsOnlyFlagName   = "dirs-only"
	filesOnlyFlagName  = "files-only"
	noHiddenFlagName   = "no-hidden"
	presetFlagName     = "preset"
	ignoreFileFlagName = "ignore-file"
	excludeFlagName    = "exclude"
	styleFlagName      = "style"
	alphabeticFlagName = "alphabetic"
	copyFlagName       = "copy"
	configFlagName     = "config"
	versionFlagName    = "version"

	outputFlagShorthand     = "o"
	depthFlagShorthand      = "d"
	presetFlagShorthand     = "p"
	ignoreFileFlagShorthand = "i"
	excludeFlagShorthand    = "e"
	styleFlagShorthand      = "s"
	alphabeticFlagShorthand = "a"

	versionTemplate = "treetool version: %s\n"
	defaultPath     = "."
	rootUse         = "treetool [path]"

	rootShortDescription = "render a directory tree as formatted text"
	rootLongDescription  = `treetool renders a directory structure as an ASCII or Unicode tree.
It applies depth limits, preset and custom ignore patterns, and sort order,
then writes the result to stdout or to a .txt or .md file.`
	rootUsageExample = `  # Current directory, three levels deep
  treetool . --depth 3

  # Python project saved as Markdown
  treetool . --preset python -o tree.md

  # Unicode connectors with colored terminal output
  treetool . --style unicode --color`

	outputFlagDescription     = "output file (.txt or .md); prints to stdout when omitted"
	statsFlagDescription      = "append directory/file statistics"
	colorFlagDescription      = "colorize terminal output"
	depthFlagDescription      = "maximum depth to display (-1 for unlimited)"
	dirsOnlyFlagDescription   = "show only directories"
	filesOnlyFlagDescription  = "show only files"
	noHiddenFlagDescription   = "exclude hidden files and directories"
	presetFlagDescription     = "preset ignore patterns (python|node|git|ide|all, repeatable)"
	ignoreFileFlagDescription = "path to an ignore file (gitignore-like format)"
	excludeFlagDescription    = "exclude pattern (repeatable)"
	styleFlagDescription      = "tree drawing style (ascii|unicode|bold|minimal)"
	alphabeticFlagDescription = "sort all entries alphabetically instead of directories first"
	copyFlagDescription       = "copy the rendered output to the system clipboard"
	configFlagDescription     = "path to the application configuration file"
	versionFlagDescription    = "display application version"

	mutuallyExclusiveFiltersMessage = "--dirs-only and --files-only are mutually exclusive"
	invalidDepthMessageFormat       = "invalid depth %d: must be -1 (unlimited) or >= 0"
	warningClipboardFormat          = "Warning: unable to copy output to clipboard: %v\n"
)

// clipboardCopier is replaceable in tests.
var clipboardCopier clipboard.Copier = clipboard.NewService()

// runOptions stores the raw flag values of one invocation before they
// are resolved into a RunConfig.
type runOptions struct {
	outputPath      string
	showStats       bool
	useColor        bool
	maxDepth        int
	dirsOnly        bool
	filesOnly       bool
	noHidden        bool
	presetNames     []string
	ignoreFilePath  string
	excludePatterns []string
	styleName       string
	alphabetic      bool
	copyToClipboard bool
	configPath      string
}

// Execute runs the treetool application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options runOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			runConfig, configurationError := buildRunConfig(command, options, rootPath)
			if configurationError != nil {
				return configurationError
			}
			return executeRun(runConfig, os.Stdout)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	commandFlags := rootCommand.Flags()
	commandFlags.StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	commandFlags.BoolVar(&options.showStats, statsFlagName, false, statsFlagDescription)
	commandFlags.BoolVar(&options.useColor, colorFlagName, false, colorFlagDescription)
	commandFlags.IntVarP(&options.maxDepth, depthFlagName, depthFlagShorthand, types.DepthUnbounded, depthFlagDescription)
	commandFlags.BoolVar(&options.dirsOnly, dirsOnlyFlagName, false, dirsOnlyFlagDescription)
	commandFlags.BoolVar(&options.filesOnly, filesOnlyFlagName, false, filesOnlyFlagDescription)
	commandFlags.BoolVar(&options.noHidden, noHiddenFlagName, false, noHiddenFlagDescription)
	commandFlags.StringArrayVarP(&options.presetNames, presetFlagName, presetFlagShorthand, nil, presetFlagDescription)
	commandFlags.StringVarP(&options.ignoreFilePath, ignoreFileFlagName, ignoreFileFlagShorthand, "", ignoreFileFlagDescription)
	commandFlags.StringArrayVarP(&options.excludePatterns, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)
	commandFlags.StringVarP(&options.styleName, styleFlagName, styleFlagShorthand, types.StyleASCII, styleFlagDescription)
	commandFlags.BoolVarP(&options.alphabetic, alphabeticFlagName, alphabeticFlagShorthand, false, alphabeticFlagDescription)
	commandFlags.BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	commandFlags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)

	return rootCommand
}

// buildRunConfig resolves flags, configuration file defaults, and ignore
// sources into the immutable run configuration. Every configuration
// error is detected here, before any traversal begins.
func buildRunConfig(command *cobra.Command, options runOptions, rootPath string) (types.RunConfig, error) {
	applicationConfiguration, configurationLoadError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configPath,
	})
	if configurationLoadError != nil {
		return types.RunConfig{}, configurationLoadError
	}
	options = applyConfiguredDefaults(command, options, applicationConfiguration)

	if options.dirsOnly && options.filesOnly {
		return types.RunConfig{}, &types.ConfigError{Reason: mutuallyExclusiveFiltersMessage}
	}
	if !output.IsSupportedStyle(options.styleName) {
		return types.RunConfig{}, &types.ConfigError{Reason: fmt.Sprintf("unknown style %q (valid styles: %v)", options.styleName, output.StyleNames())}
	}
	if options.maxDepth < types.DepthUnbounded {
		return types.RunConfig{}, &types.ConfigError{Reason: fmt.Sprintf(invalidDepthMessageFormat, options.maxDepth)}
	}
	if destinationError := output.ValidateDestination(options.outputPath); destinationError != nil {
		return types.RunConfig{}, destinationError
	}

	patterns, patternsError := collectIgnorePatterns(options)
	if patternsError != nil {
		return types.RunConfig{}, patternsError
	}

	return types.RunConfig{
		RootPath:        rootPath,
		MaxDepth:        options.maxDepth,
		DirectoriesOnly: options.dirsOnly,
		FilesOnly:       options.filesOnly,
		Alphabetic:      options.alphabetic,
		Style:           options.styleName,
		ShowStats:       options.showStats,
		UseColor:        options.useColor && options.outputPath == "" && isatty.IsTerminal(os.Stdout.Fd()),
		HideHidden:      options.noHidden,
		Rules:           ignore.CompileRules(patterns),
		OutputPath:      options.outputPath,
		CopyToClipboard: options.copyToClipboard,
	}, nil
}

// applyConfiguredDefaults overlays configuration file values onto flags
// the user did not set on the command line. Configured exclude patterns
// are always unioned with inline ones; every other value yields to an
// explicit flag.
func applyConfiguredDefaults(command *cobra.Command, options runOptions, configuration config.ApplicationConfiguration) runOptions {
	commandFlags := command.Flags()
	if !commandFlags.Changed(styleFlagName) && configuration.Style != "" {
		options.styleName = configuration.Style
	}
	if !commandFlags.Changed(colorFlagName) && configuration.Color != nil {
		options.useColor = *configuration.Color
	}
	if !commandFlags.Changed(statsFlagName) && configuration.Stats != nil {
		options.showStats = *configuration.Stats
	}
	if !commandFlags.Changed(alphabeticFlagName) && configuration.Alphabetic != nil {
		options.alphabetic = *configuration.Alphabetic
	}
	if !commandFlags.Changed(noHiddenFlagName) && configuration.NoHidden != nil {
		options.noHidden = *configuration.NoHidden
	}
	if !commandFlags.Changed(presetFlagName) && len(configuration.Presets) > 0 {
		options.presetNames = configuration.Presets
	}
	options.excludePatterns = append(options.excludePatterns, configuration.Exclude...)
	return options
}

// collectIgnorePatterns unions the exclusion sources: preset bundles,
// an explicit ignore file, and inline exclude patterns.
func collectIgnorePatterns(options runOptions) ([]string, error) {
	patterns, presetError := config.PresetPatterns(options.presetNames)
	if presetError != nil {
		return nil, presetError
	}

	if options.ignoreFilePath != "" {
		ignoreFilePatterns, loadError := config.LoadIgnoreFilePatterns(options.ignoreFilePath)
		if loadError != nil {
			return nil, loadError
		}
		patterns = append(patterns, ignoreFilePatterns...)
	}

	patterns = append(patterns, options.excludePatterns...)
	return utils.DeduplicatePatterns(patterns), nil
}

// executeRun walks the tree, renders it, and delivers the output. The
// pipeline materializes the full line buffer before anything is
// written, so a failed file write never leaves partial output behind.
func executeRun(runConfig types.RunConfig, stdout io.Writer) error {
	treeWalker := walker.NewTreeWalker(runConfig)
	rootEntry, walkError := treeWalker.Walk(runConfig.RootPath)
	if walkError != nil {
		return walkError
	}

	renderedLines, renderError := output.RenderTree(rootEntry, runConfig.Style)
	if renderError != nil {
		return renderError
	}
	if runConfig.ShowStats {
		renderedLines = append(renderedLines, output.FormatStats(output.CollectStats(rootEntry))...)
	}

	if runConfig.CopyToClipboard {
		if copyError := clipboardCopier.Copy(output.AssembleContent(renderedLines, "")); copyError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardFormat, copyError)
		}
	}

	displayLines := renderedLines
	if runConfig.UseColor && runConfig.OutputPath == "" {
		displayLines = output.ColorizeLines(renderedLines)
	}
	return output.WriteOutput(displayLines, runConfig.OutputPath, stdout)
}
