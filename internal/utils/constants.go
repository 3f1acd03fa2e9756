package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// GitIgnoreFileName is the name of the Git ignore file.
const GitIgnoreFileName = ".gitignore"

// ConfigFileName is the name of the dirtree configuration file.
const ConfigFileName = ".dirtree.yaml"

// GlobalConfigDirectoryName is the directory below the home directory that
// holds the global configuration file.
const GlobalConfigDirectoryName = ".config/dirtree"

// LoggerInitializationFailedMessageFormat reports a failed logger construction.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage reports a failed application run.
const ApplicationExecutionFailedMessage = "dirtree execution failed"
