/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package xbase

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile writes data to a temp file next to file and renames it over
// file, readers see either the old or the new content.
func WriteFile(file string, data []byte) error {
	tmp := file + ".tmp"
	f, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	n, err := f.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return errors.WithStack(err)
	}
	if err := os.Rename(tmp, file); err != nil {
		os.Remove(tmp)
		return errors.WithStack(err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(file string) bool {
	info, err := os.Stat(file)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Ext returns the lower-cased extension of file without the dot.
func Ext(file string) string {
	ext := filepath.Ext(file)
	if ext == "" {
		return ""
	}
	b := []byte(ext[1:])
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// Truncate used to truncate the text with max length.
func Truncate(text string, max int) string {
	if max == 0 || len(text) <= max {
		return text
	}
	return text[:max] + " [TRUNCATED]"
}
