// FILE: lixenwraith/beautylog/storage.go
package beautylog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// rotationState tracks the file currently receiving appends. Guarded by fileMu.
type rotationState struct {
	currentPath string // Empty in the NoFile state
	index       int    // Rotation index within the partition
	partition   string // Date and hour the index belongs to
}

// reset returns to the NoFile state for the given partition
func (r *rotationState) reset(partition string) {
	r.currentPath = ""
	r.index = 0
	r.partition = partition
}

// fileEntry is a formatted line waiting to be appended, with the
// configuration in effect when it was accepted
type fileEntry struct {
	cfg    *Config
	record logRecord
	line   string
}

// writeFile hands a record to the file sink when the sink is enabled
func (l *Logger) writeFile(cfg *Config, record logRecord, line string) error {
	if !cfg.EnableFile {
		return nil
	}

	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	return l.writeFileLocked(cfg, record, line)
}

// appendBatch writes buffered entries in submission order, collecting every failure.
// Each entry is written under the configuration it was accepted with.
func (l *Logger) appendBatch(entries []fileEntry) error {
	if len(entries) == 0 {
		return nil
	}

	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	var errs []error
	for _, e := range entries {
		if err := l.writeFileLocked(e.cfg, e.record, e.line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// writeFileLocked resolves the target file and appends one line. Caller holds fileMu.
// Directories and the target file are prepared for every record; the level
// threshold only decides whether the line is appended.
func (l *Logger) writeFileLocked(cfg *Config, record logRecord, line string) error {
	path, err := l.prepareFile(cfg, record.TimeStamp)
	if err != nil {
		return err
	}

	if record.Level < cfg.FileLevel {
		return ensureFile(path)
	}

	text := withStack(line, record.Stack, cfg.FileStackTrace) + "\n"
	if err := appendLine(path, text); err != nil {
		return err
	}
	l.state.TotalLogsWritten.Add(1)
	return nil
}

// prepareFile runs the rotation state machine and returns the path to append to.
// The partition is recomputed on every write, so an hour or day change resets the index.
func (l *Logger) prepareFile(cfg *Config, ts time.Time) (string, error) {
	day := ts.Format(datePartitionLayout)
	hour := ts.Format(hourLayout)
	partition := day + "_" + hour

	r := &l.rotation
	if r.partition != partition {
		r.reset(partition)
	} else if r.currentPath != "" {
		// Tracked file removed from disk, start over
		if _, err := os.Stat(r.currentPath); errors.Is(err, fs.ErrNotExist) {
			r.reset(partition)
		}
	}

	dir := filepath.Join(cfg.Directory, day)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", ioErrorf("create date directory", dir, err)
	}

	name := l.processName(cfg)
	for {
		path := filepath.Join(dir, l.fileName(name, hour, r.index, cfg.Extension))
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			r.currentPath = path
			return path, nil
		case err != nil:
			return "", ioErrorf("stat log file", path, err)
		case cfg.MaxSizeBytes > 0 && info.Size() > cfg.MaxSizeBytes:
			r.index++
			l.state.TotalRotations.Add(1)
			continue
		default:
			r.currentPath = path
			return path, nil
		}
	}
}

// fileName builds "<name>_<HH>_<index>_<session><ext>"
func (l *Logger) fileName(name, hour string, index int, ext string) string {
	buf := make([]byte, 0, len(name)+len(ext)+16)
	buf = append(buf, name...)
	buf = append(buf, '_')
	buf = append(buf, hour...)
	buf = append(buf, '_')
	buf = strconv.AppendInt(buf, int64(index), 10)
	buf = append(buf, '_')
	buf = append(buf, l.sessionID...)
	buf = append(buf, ext...)
	return string(buf)
}

// ensureFile creates path if absent without writing to it
func ensureFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return ioErrorf("create log file", path, err)
	}
	if err := f.Close(); err != nil {
		return ioErrorf("close log file", path, err)
	}
	return nil
}

// appendLine opens, appends and closes. No handle outlives a single write.
func appendLine(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return ioErrorf("open log file", path, err)
	}

	_, writeErr := f.WriteString(text)
	closeErr := f.Close()

	if writeErr != nil {
		return ioErrorf("write log file", path, writeErr)
	}
	if closeErr != nil {
		return ioErrorf("close log file", path, closeErr)
	}
	return nil
}
