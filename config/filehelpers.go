// Copyright 2019 Jake Johns
//
// This file is part of gpg-expires, a pair of tools for finding OpenPGP
// keys which are about to expire.
//
// gpg-expires is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpg-expires is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with gpg-expires.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"bytes"
	"io"
	"os"

	"github.com/natefinch/atomic"
)

type fileFunctionsInterface interface {
	OsStat(string) (os.FileInfo, error)
	OsOpen(string) (io.Reader, error)
	WriteFile(string, []byte, os.FileMode) error
}

// fileFunctionsPassthrough simply passes calls through to the real os/io
// functions
type fileFunctionsPassthrough struct {
}

func (p *fileFunctionsPassthrough) OsStat(filename string) (os.FileInfo, error) {
	return os.Stat(filename)
}

func (p *fileFunctionsPassthrough) OsOpen(filename string) (io.Reader, error) {
	return os.Open(filename)
}

// WriteFile writes atomically so a crash can't leave a half-written config
// file behind.
func (p *fileFunctionsPassthrough) WriteFile(filename string, data []byte, mode os.FileMode) error {
	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(filename, mode)
}
