// constants.go

// Package common provides shared functionality and constants for the HelloWorld application.
// This file contains constants used across the application to replace hardcoded strings.
package common

// AppIdentifiers - Constants for application identification
const (
	// AppID is the application identifier
	AppID = "com.example.helloworld"

	// AppName is the application name, also the name of its data directory
	AppName = "HelloWorld"

	// AppDisplayName is the untranslated application name
	AppDisplayName = "Hello World"

	// AppVersion is the application version shown in the about dialog
	AppVersion = "1.0.0"
)

// FileNames - Constants for file names
const (
	// FileNameSettings is the name of the configuration file
	FileNameSettings = "settings.conf"

	// FileNameLog is the name of the application log file
	FileNameLog = "helloworld.log"

	// FolderNameLog is the name of the log folder
	FolderNameLog = "log"
)

// Log rotation limits
const (
	LogMaxSizeMB  = 10
	LogMaxAgeDays = 7
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitPanic   = 2
)

// Selection values of the two radio buttons
const (
	SelectionWorld    = 0
	SelectionUniverse = 1
)

// OperationNames - Constants for operation names used in ErrorContext
const (
	OperationLoadConfig   = "LoadConfiguration"
	OperationSaveConfig   = "SaveConfiguration"
	OperationReadLog      = "ReadLog"
	OperationApplyLang    = "ApplyLanguage"
	OperationPersistValue = "PersistSelection"
)
