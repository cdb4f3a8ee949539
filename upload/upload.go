/*
 * upload.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


//Package upload is the boundary where PDB files enter the viewer. It checks
//names and sizes, and decompresses gzip and zstd files on the fly.
package upload

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/rmera/protview"
	"github.com/rmera/protview/internal/zio"
)

// MaxBytes is the default size limit for uploads.
const MaxBytes = 10 * 1024 * 1024

// Extensions accepted for PDB files. A compression extension
// (.gz or .zst) can follow them.
var Extensions = []string{".pdb", ".ent"}

var (
	ErrExtension = errors.New("upload: only .pdb and .ent files are accepted")
	ErrTooLarge  = errors.New("upload: file too large")
)

// Check returns an error if a file called name with size bytes can't be
// accepted. A negative size skips the size check.
func Check(name string, size, limit int64) error {
	ext := strings.ToLower(filepath.Ext(zio.Strip(name)))
	ok := false
	for _, v := range Extensions {
		if ext == v {
			ok = true
			break
		}
	}
	if !ok {
		return errors.Wrapf(ErrExtension, "%s", filepath.Base(name))
	}
	if size >= 0 && size > limit {
		return errors.Wrapf(ErrTooLarge, "%s is %d bytes, the limit is %d", filepath.Base(name), size, limit)
	}
	return nil
}

// Read reads the whole upload from r, decompressing it if name says it is
// compressed. At most limit bytes of uncompressed content are accepted.
func Read(r io.Reader, name string, limit int64) (string, error) {
	if err := Check(name, -1, limit); err != nil {
		return "", err
	}
	zr, err := zio.NewReader(r, zio.FormatOf(name))
	if err != nil {
		return "", errors.Wrapf(err, "upload: opening %s", filepath.Base(name))
	}
	defer zr.Close()
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(zr, limit+1))
	if err != nil {
		return "", errors.Wrapf(err, "upload: reading %s", filepath.Base(name))
	}
	if n > limit {
		return "", errors.Wrapf(ErrTooLarge, "%s is more than %d bytes uncompressed", filepath.Base(name), limit)
	}
	return buf.String(), nil
}

// ReadFile checks and reads the file name. See Read.
func ReadFile(name string, limit int64) (string, error) {
	info, err := os.Stat(name)
	if err != nil {
		return "", errors.Wrap(err, "upload")
	}
	if zio.FormatOf(name) == zio.Plain {
		if err := Check(name, info.Size(), limit); err != nil {
			return "", err
		}
	}
	f, err := os.Open(name)
	if err != nil {
		return "", errors.Wrap(err, "upload")
	}
	defer f.Close()
	return Read(f, name, limit)
}

// DisplayName returns the name to show for an upload: the protein name
// in its records if there is one, otherwise the lowercased file name
// without extensions.
func DisplayName(content, fileName string) string {
	if name := protview.ExtractProteinName(content); name != protview.UnknownProtein {
		return name
	}
	base := filepath.Base(zio.Strip(fileName))
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
