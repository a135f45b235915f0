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
	WriteFileError

	// Logging errors
	CreateLogFileError

	// HELM notation errors
	NotationSectionsError
	NotationChainRefError
	NotationBracketError
	NotationChainHeaderError
	NotationSeparatorError
	FastaHeaderError

	// Symbol table errors
	SymbolCapacityError

	// Matrix synthesis errors
	MatrixMonomerMapError
	MatrixReferenceError
	MatrixRowNotFoundError
	MatrixWriteError

	// Scoring errors
	ScoreMatrixParseError
	ScorePairMissingError
	ScoreLengthError

	// MAFFT errors
	MafftExecError
	MafftNotFoundError

	// Alignment task errors
	TaskInputError
)
