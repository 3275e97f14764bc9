package table

import (
	"fmt"

	lj "github.com/rmera/ljscan"
)

//errDecorate is a helper function that asserts that the error
//implements lj.Error and decorates the error with the caller's name before returning it.
//if used with a non-lj.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(lj.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for table errors. It fullfills lj.Error
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("table file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Filename returns the file to which the failing table was associated
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	TableUnIniRead  = "Table object uninitialized to read"
	TableUnIniWrite = "Table object uninitialized to write"
	ReadError       = "Error reading row"
)

//LastRowError is returned by Reader.Next after the last row. It is not a failure.
type LastRowError interface {
	lj.Error
	NormalLastRowTermination() //does nothing, just to separate this interface from other errors
}

//lastRowError implements LastRowError
type lastRowError struct {
	deco     []string
	fileName string
}

func (E *lastRowError) NormalLastRowTermination() {}

func (E *lastRowError) FileName() string { return E.fileName }

func (E *lastRowError) Error() string { return "EOF" }

func (E *lastRowError) Critical() bool { return false }

func (E *lastRowError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
