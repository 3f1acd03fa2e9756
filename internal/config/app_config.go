package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/dirtree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds run defaults read from configuration files.
// Pointer-typed fields distinguish "unset" from an explicit false or zero so
// command-line flags keep precedence.
type ApplicationConfiguration struct {
	All       *bool  `mapstructure:"all"`
	DirsOnly  *bool  `mapstructure:"dirs_only"`
	NoIndent  *bool  `mapstructure:"no_indent"`
	FullPath  *bool  `mapstructure:"full_path"`
	Gitignore *bool  `mapstructure:"gitignore"`
	MaxDepth  *int   `mapstructure:"max_depth"`
	Output    string `mapstructure:"output"`
	Clipboard *bool  `mapstructure:"clipboard"`
}

// LoadApplicationConfiguration loads configuration from the global file in
// the home directory and the local file in the working directory, the local
// file overlaying the global one.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == utils.EmptyString {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeDirectoryError := os.UserHomeDir(); homeDirectoryError == nil && homeDirectory != utils.EmptyString {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != utils.EmptyString {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory string, explicitPath string) (string, error) {
	if explicitPath != utils.EmptyString {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == utils.EmptyString {
		return utils.EmptyString, nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(configurationPath string) (ApplicationConfiguration, error) {
	if configurationPath == utils.EmptyString {
		return ApplicationConfiguration{}, nil
	}
	pathInfo, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if pathInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	configurationReader := viper.New()
	configurationReader.SetConfigFile(configurationPath)
	configurationReader.SetConfigType("yaml")
	if readError := configurationReader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var loadedConfiguration ApplicationConfiguration
	if decodeError := configurationReader.Unmarshal(&loadedConfiguration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}
	return loadedConfiguration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.All != nil {
		result.All = cloneBool(override.All)
	}
	if override.DirsOnly != nil {
		result.DirsOnly = cloneBool(override.DirsOnly)
	}
	if override.NoIndent != nil {
		result.NoIndent = cloneBool(override.NoIndent)
	}
	if override.FullPath != nil {
		result.FullPath = cloneBool(override.FullPath)
	}
	if override.Gitignore != nil {
		result.Gitignore = cloneBool(override.Gitignore)
	}
	if override.MaxDepth != nil {
		result.MaxDepth = cloneInt(override.MaxDepth)
	}
	if override.Output != utils.EmptyString {
		result.Output = override.Output
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
