package proteomics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Saver delivers a finished workbook.
type Saver interface {
	Save(filename string, data []byte) error
}

// DirSaver writes workbooks into a directory.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(filename string, data []byte) error {
	var out, err = os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return err
	}
	if _, err = out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(filename string, data []byte) error

func (f SaverFunc) Save(filename string, data []byte) error {
	return f(filename, data)
}

// Session holds the state of one user's workflow: the current dataset, the
// registered sample groups and the client label.
type Session struct {
	Dataset     *Dataset
	Registry    *Registry
	ClientLabel string

	Reporter Reporter
	// Now returns the export date, time.Now when nil.
	Now func() time.Time

	// LastSummaries holds the sheet summaries of the last successful export.
	LastSummaries []SheetSummary
}

func NewSession(reporter Reporter) *Session {
	if reporter == nil {
		reporter = NopReporter{}
	}
	var session = &Session{
		Registry: NewRegistry(),
		Reporter: reporter,
	}
	session.updateTrigger()
	return session
}

func (session *Session) now() time.Time {
	if session.Now == nil {
		return time.Now()
	}
	return session.Now()
}

// CanProcess reports whether an export may be started.
func (session *Session) CanProcess() bool {
	return CanProcess(session.Dataset != nil, session.Registry.Len())
}

func (session *Session) updateTrigger() {
	session.Reporter.SetTriggerEnabled(session.CanProcess())
}

// Upload parses text and makes it the current dataset. A failed parse
// leaves the previous dataset in place.
func (session *Session) Upload(text string) error {
	var dataset, err = Parse(text)
	if err != nil {
		session.Reporter.ShowStatus(LevelError, "Error parsing file: "+err.Error())
		return err
	}
	session.Dataset = dataset
	session.updateTrigger()
	session.Reporter.ShowStatus(
		LevelSuccess,
		fmt.Sprintf("File uploaded successfully! Rows: %d Columns: %d", dataset.Len(), dataset.ColumnCount()),
	)
	return nil
}

// UploadFile reads path completely, then uploads its content.
func (session *Session) UploadFile(path string) error {
	var text, err = ReadFile(path)
	if err != nil {
		session.Reporter.ShowStatus(LevelError, "Error reading file")
		return err
	}
	return session.Upload(text)
}

func (session *Session) AddGroup(name string) error {
	if err := session.Registry.Add(name); err != nil {
		session.Reporter.ShowStatus(LevelError, capitalize(err.Error()))
		return err
	}
	session.updateTrigger()
	session.Reporter.ShowStatus(LevelSuccess, "Added sample group: "+strings.TrimSpace(name))
	return nil
}

func (session *Session) RemoveGroup(name string) {
	session.Registry.Remove(name)
	session.updateTrigger()
	session.Reporter.ShowStatus(LevelInfo, "Removed sample group: "+name)
}

func (session *Session) LoadDefaults() {
	session.Registry.LoadDefaults()
	session.updateTrigger()
	session.Reporter.ShowStatus(LevelInfo, "Loaded default sample groups")
}

// Process exports the current dataset and hands the workbook to saver. The
// trigger is disabled while it runs and re-enabled afterwards, whatever the
// outcome. Errors other than ErrNoData are *ExportError.
func (session *Session) Process(saver Saver) (filename string, err error) {
	if !session.CanProcess() {
		session.Reporter.ShowStatus(LevelError, capitalize(ErrNoData.Error()))
		return "", ErrNoData
	}

	session.Reporter.SetTriggerEnabled(false)
	defer session.updateTrigger()

	data, filename, summaries, err := ExportSummary(
		session.Dataset, session.Registry.Groups(), session.ClientLabel, session.now(), session.Reporter,
	)
	if err == nil {
		if saveErr := saver.Save(filename, data); saveErr != nil {
			err = &ExportError{Err: saveErr}
		}
	}
	if err != nil {
		session.Reporter.SetProgress(0)
		session.Reporter.ShowStatus(LevelError, "Error generating Excel file: "+errorMessage(err))
		return "", err
	}

	session.LastSummaries = summaries
	session.Reporter.ShowStatus(LevelSuccess, "Excel file generated successfully: "+filename)
	return filename, nil
}

func errorMessage(err error) string {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr.Err.Error()
	}
	return err.Error()
}

func capitalize(s string) string {
	var r, size = utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
