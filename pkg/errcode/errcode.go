package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBClearError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Classification errors
	ClassifyMissingKeyError
	ClassifyRequestError
	ClassifyMalformedError

	// Query errors
	AskQueryError
	AskScanError

	// Import errors
	ImportFileError
	ImportHeaderError
	ImportRowError
	ImportColumnsConfigError
	ImportLoadError
)
