/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package xbase

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXbaseWriteFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "hstore_xbase_")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)
	file := path.Join(dir, "xbase.test")

	// Write OK.
	{
		err := WriteFile(file, []byte{0xfd})
		assert.Nil(t, err)
		assert.True(t, FileExists(file))
		assert.False(t, FileExists(file+".tmp"))
	}

	// Overwrite.
	{
		err := WriteFile(file, []byte("hstore"))
		assert.Nil(t, err)
		got, err := ioutil.ReadFile(file)
		assert.Nil(t, err)
		assert.Equal(t, "hstore", string(got))
	}

	// Write Error.
	{
		badFile := "/xx/xbase.test"
		err := WriteFile(badFile, []byte{0xfd})
		assert.NotNil(t, err)
	}
}

func TestXbaseFileExists(t *testing.T) {
	assert.False(t, FileExists("/xx/nothing"))
	assert.False(t, FileExists(os.TempDir()))
}

func TestXbaseExt(t *testing.T) {
	var testCases = []struct {
		in, out string
	}{{
		in:  "plan.json",
		out: "json",
	}, {
		in:  "/etc/hstore/plan.YAML",
		out: "yaml",
	}, {
		in:  "plan",
		out: "",
	}}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.out, Ext(testCase.in))
	}
}

func TestXbaseTruncate(t *testing.T) {
	var testCases = []struct {
		in, out string
	}{{
		in:  "",
		out: "",
	}, {
		in:  "12345",
		out: "12345",
	}, {
		in:  "123456",
		out: "12345 [TRUNCATED]",
	}}
	for _, testCase := range testCases {
		got := Truncate(testCase.in, 5)
		assert.Equal(t, testCase.out, got)
	}
}
