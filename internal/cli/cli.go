// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/dirtree/internal/commands"
	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/services/clipboard"
	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	rootUse              = "dirtree [paths...]"
	rootShortDescription = "render directories in a tree-like format"
	rootLongDescription  = `dirtree lists the contents of directories in a tree-like format.
Entries can be filtered through .gitignore rules, restricted to directories,
bounded by depth, and written to a file or the clipboard instead of stdout.`
	rootUsageExample = `  # Render the current directory, honoring .gitignore
  dirtree -g

  # Show two levels of a project including hidden entries
  dirtree -a -L 2 ./project

  # Write the tree of several paths to a file
  dirtree -o layout.txt ./cmd ./internal`

	allFlagName       = "all"
	allFlagShorthand  = "a"
	allFlagUsage      = "list hidden entries as well"
	dirsOnlyFlagName  = "dirs-only"
	dirsOnlyShorthand = "d"
	dirsOnlyFlagUsage = "list directories only"
	noIndentFlagName  = "no-indent"
	noIndentShorthand = "i"
	noIndentFlagUsage = "do not print indentation lines"
	fullPathFlagName  = "full-path"
	fullPathShorthand = "f"
	fullPathFlagUsage = "display full canonical paths"
	gitignoreFlagName = "gitignore"
	gitignoreShort    = "g"
	gitignoreUsage    = "hide entries matched by .gitignore"
	levelFlagName     = "level"
	levelFlagShort    = "L"
	levelFlagUsage    = "maximum display depth of the tree"
	outputFlagName    = "output"
	outputFlagShort   = "o"
	outputFlagUsage   = "write the tree to a file instead of stdout"
	copyFlagName      = "copy"
	copyFlagUsage     = "copy the tree to the system clipboard"
	versionFlagName   = "version"
	versionFlagUsage  = "display application version"
	versionTemplate   = "dirtree version: %s\n"

	configUse                  = "config"
	configShortDescription     = "manage dirtree configuration"
	configInitUse              = "init"
	configInitShortDescription = "write a default configuration file"
	configGlobalFlagName       = "global"
	configGlobalFlagUsage      = "write the global configuration file"
	configForceFlagName        = "force"
	configForceFlagUsage       = "overwrite an existing configuration file"
	configWrittenFormat        = "Configuration written to %s\n"

	defaultPath = "."

	outputConfirmationMessage = "Tree output generated successfully."

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorPathNotDirectoryFormat reports a path that is not a directory.
	errorPathNotDirectoryFormat = "path '%s' is not a directory"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNoValidPaths indicates that all paths are invalid.
	errorNoValidPaths = "no valid paths"
	// errorClipboardCopyFormat reports a failed clipboard copy.
	errorClipboardCopyFormat = "copying output to clipboard: %w"
)

// Execute runs the dirtree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// treeOptions stores the flag targets for the root command.
type treeOptions struct {
	allEntries        bool
	directoriesOnly   bool
	suppressIndent    bool
	fullPaths         bool
	applyGitignore    bool
	maxDepthSelection *int
	outputFilePath    string
	copyToClipboard   bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options treeOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return runTree(command, arguments, &options)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagUsage)

	rootFlags := rootCommand.Flags()
	rootFlags.BoolVarP(&options.allEntries, allFlagName, allFlagShorthand, false, allFlagUsage)
	rootFlags.BoolVarP(&options.directoriesOnly, dirsOnlyFlagName, dirsOnlyShorthand, false, dirsOnlyFlagUsage)
	rootFlags.BoolVarP(&options.suppressIndent, noIndentFlagName, noIndentShorthand, false, noIndentFlagUsage)
	rootFlags.BoolVarP(&options.fullPaths, fullPathFlagName, fullPathShorthand, false, fullPathFlagUsage)
	rootFlags.BoolVarP(&options.applyGitignore, gitignoreFlagName, gitignoreShort, false, gitignoreUsage)
	registerDepthFlag(rootFlags, &options.maxDepthSelection, levelFlagName, levelFlagShort, levelFlagUsage)
	rootFlags.StringVarP(&options.outputFilePath, outputFlagName, outputFlagShort, utils.EmptyString, outputFlagUsage)
	registerCopyFlag(rootFlags, &options.copyToClipboard, copyFlagName, copyFlagUsage)

	rootCommand.AddCommand(createConfigCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runTree resolves configuration defaults, validates the input paths, renders
// the tree, and dispatches it to the selected sinks.
func runTree(command *cobra.Command, arguments []string, options *treeOptions) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return configurationError
	}
	applyConfigurationDefaults(command, options, applicationConfiguration)

	inputPaths := arguments
	if len(inputPaths) == 0 {
		inputPaths = []string{defaultPath}
	}
	validatedPaths, pathValidationError := resolveAndValidatePaths(inputPaths)
	if pathValidationError != nil {
		return pathValidationError
	}

	rootPaths := make([]string, 0, len(validatedPaths))
	for _, validatedPath := range validatedPaths {
		rootPaths = append(rootPaths, validatedPath.GivenPath)
	}

	runConfiguration := types.RunConfiguration{
		Paths:           rootPaths,
		All:             options.allEntries,
		DirsOnly:        options.directoriesOnly,
		NoIndent:        options.suppressIndent,
		FullPath:        options.fullPaths,
		Gitignore:       options.applyGitignore,
		MaxDepth:        options.maxDepthSelection,
		OutputFilePath:  options.outputFilePath,
		CopyToClipboard: options.copyToClipboard,
	}

	renderedOutput, generationError := commands.NewTreeGenerator(runConfiguration).Generate()
	if generationError != nil {
		return generationError
	}

	if writeError := output.Write(renderedOutput, runConfiguration.OutputFilePath); writeError != nil {
		return writeError
	}
	if runConfiguration.OutputFilePath != utils.EmptyString {
		fmt.Println(outputConfirmationMessage)
	}

	if runConfiguration.CopyToClipboard {
		if copyError := clipboard.NewService().Copy(renderedOutput); copyError != nil {
			return fmt.Errorf(errorClipboardCopyFormat, copyError)
		}
	}
	return nil
}

// applyConfigurationDefaults overlays configuration-file defaults onto flags
// the user did not set on the command line.
func applyConfigurationDefaults(command *cobra.Command, options *treeOptions, applicationConfiguration config.ApplicationConfiguration) {
	flagSet := command.Flags()
	if !flagSet.Changed(allFlagName) && applicationConfiguration.All != nil {
		options.allEntries = *applicationConfiguration.All
	}
	if !flagSet.Changed(dirsOnlyFlagName) && applicationConfiguration.DirsOnly != nil {
		options.directoriesOnly = *applicationConfiguration.DirsOnly
	}
	if !flagSet.Changed(noIndentFlagName) && applicationConfiguration.NoIndent != nil {
		options.suppressIndent = *applicationConfiguration.NoIndent
	}
	if !flagSet.Changed(fullPathFlagName) && applicationConfiguration.FullPath != nil {
		options.fullPaths = *applicationConfiguration.FullPath
	}
	if !flagSet.Changed(gitignoreFlagName) && applicationConfiguration.Gitignore != nil {
		options.applyGitignore = *applicationConfiguration.Gitignore
	}
	if !flagSet.Changed(levelFlagName) && applicationConfiguration.MaxDepth != nil {
		configuredDepth := *applicationConfiguration.MaxDepth
		if configuredDepth >= 0 {
			options.maxDepthSelection = &configuredDepth
		}
	}
	if !flagSet.Changed(outputFlagName) && applicationConfiguration.Output != utils.EmptyString {
		options.outputFilePath = applicationConfiguration.Output
	}
	if !flagSet.Changed(copyFlagName) && applicationConfiguration.Clipboard != nil {
		options.copyToClipboard = *applicationConfiguration.Clipboard
	}
}

// createConfigCommand returns the config subcommand with its init action.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
	}

	var globalTarget bool
	var forceOverwrite bool
	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			destinationPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Printf(configWrittenFormat, destinationPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&globalTarget, configGlobalFlagName, false, configGlobalFlagUsage)
	initCommand.Flags().BoolVar(&forceOverwrite, configForceFlagName, false, configForceFlagUsage)

	configCommand.AddCommand(initCommand)
	return configCommand
}

// resolveAndValidatePaths checks that every input path exists and is a
// directory, removing duplicates while preserving the given spelling for
// display.
func resolveAndValidatePaths(inputPaths []string) ([]types.ValidatedPath, error) {
	seenPaths := make(map[string]struct{})
	var validatedPaths []types.ValidatedPath
	for _, inputPath := range inputPaths {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			return nil, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
		}
		cleanPath := filepath.Clean(absolutePath)
		if _, alreadySeen := seenPaths[cleanPath]; alreadySeen {
			continue
		}
		pathInfo, statError := os.Stat(cleanPath)
		if statError != nil {
			if os.IsNotExist(statError) {
				return nil, fmt.Errorf(errorPathMissingFormat, inputPath)
			}
			return nil, fmt.Errorf(errorStatFormat, inputPath, statError)
		}
		if !pathInfo.IsDir() {
			return nil, fmt.Errorf(errorPathNotDirectoryFormat, inputPath)
		}
		seenPaths[cleanPath] = struct{}{}
		validatedPaths = append(validatedPaths, types.ValidatedPath{
			GivenPath:    inputPath,
			AbsolutePath: cleanPath,
		})
	}
	if len(validatedPaths) == 0 {
		return nil, fmt.Errorf(errorNoValidPaths)
	}
	return validatedPaths, nil
}
