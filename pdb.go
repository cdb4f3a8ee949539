/*
 * pdb.go, part of protview.
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

package protview

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// UnknownProtein is the name given to structures without HEADER or TITLE records.
const UnknownProtein = "unknown protein"

// MaxLineLength is the longest line ParseReader reads. Longer lines are
// skipped and recorded as warnings.
const MaxLineLength = 1024 * 1024

//Parse reads the ATOM, HETATM, HELIX and SHEET records in content and returns
//the resulting structure. Lines that can't be parsed are skipped, and recorded
//as warnings in the structure. Parse never fails: content without atom records
//simply gives an empty structure (see Validate).
func Parse(content string) *Structure {
	//ParseReader only fails on read errors, and a strings.Reader has none.
	s, _ := ParseReader(strings.NewReader(content))
	return s
}

//ParseReader is like Parse, but reads the PDB data from r. It only returns an error
//if reading from r fails. Even then, the returned structure is complete for the
//lines read before the failure.
func ParseReader(r io.Reader) (*Structure, error) {
	s := new(Structure)
	br := bufio.NewReader(r)
	contlines := 0 //count the lines read to better report errors
	var readErr error
	for {
		line, long, err := readLine(br, MaxLineLength)
		if err != nil {
			if err != io.EOF {
				readErr = err
			}
			break
		}
		contlines++
		line = strings.TrimRight(line, "\r")
		if long {
			s.Warnings = append(s.Warnings, ParseWarning{contlines, recordName(line), "line longer than " + strconv.Itoa(MaxLineLength) + " bytes"})
			continue
		}
		switch {
		case hasPrefixFold(line, "ATOM"), hasPrefixFold(line, "HETATM"):
			atom, err := readAtomLine(line, contlines)
			if err != nil {
				s.Warnings = append(s.Warnings, ParseWarning{contlines, recordName(line), err.Error()})
				continue
			}
			s.Atoms = append(s.Atoms, atom)
		case hasPrefixFold(line, "HELIX"):
			h, err := readRangeLine(line, Helix)
			if err != nil {
				s.Warnings = append(s.Warnings, ParseWarning{contlines, "HELIX", err.Error()})
				continue
			}
			s.Helices = append(s.Helices, h)
		case hasPrefixFold(line, "SHEET"):
			h, err := readRangeLine(line, Sheet)
			if err != nil {
				s.Warnings = append(s.Warnings, ParseWarning{contlines, "SHEET", err.Error()})
				continue
			}
			s.Sheets = append(s.Sheets, h)
		case hasPrefixFold(line, "MODEL"):
			s.Models++
		}
	}
	buildModel(s)
	if readErr != nil {
		return s, errDecorate(&PDBError{message: UnreadableData + ": " + readErr.Error(), critical: true}, "ParseReader")
	}
	return s, nil
}

//readLine returns the next line from r, without the line break. Only the first
//max bytes of the line are kept, long is true if there were more. A line cut by
//a read error is dropped and the error returned.
func readLine(r *bufio.Reader, max int) (line string, long bool, err error) {
	var buf []byte
	n := 0
	for {
		frag, more, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		n += len(frag)
		if n <= max {
			buf = append(buf, frag...)
		}
		if !more {
			return string(buf), n > max, nil
		}
	}
}

func recordName(line string) string {
	return strings.ToUpper(tcolumn(line, 0, 6))
}

//readAtomLine parses an ATOM or HETATM line. The serial, residue number and coordinates
//are required, an error is returned if any of them can't be read. Occupancy and
//temperature factor take default values when missing.
func readAtomLine(line string, contlines int) (*Atom, error) {
	var err error
	atom := new(Atom)
	atom.Line = contlines
	atom.Het = hasPrefixFold(line, "HETATM")
	if atom.Serial, err = strconv.Atoi(tcolumn(line, 6, 11)); err != nil {
		return nil, fieldError("serial", err)
	}
	atom.Name = tcolumn(line, 12, 16)
	atom.AltLoc = tcolumn(line, 16, 17)
	atom.ResName = tcolumn(line, 17, 20)
	atom.ChainID = tcolumn(line, 21, 22)
	if atom.ResSeq, err = strconv.Atoi(tcolumn(line, 22, 26)); err != nil {
		return nil, fieldError("residue sequence", err)
	}
	atom.ICode = tcolumn(line, 26, 27)
	if atom.X, err = strconv.ParseFloat(tcolumn(line, 30, 38), 64); err != nil {
		return nil, fieldError("x", err)
	}
	if atom.Y, err = strconv.ParseFloat(tcolumn(line, 38, 46), 64); err != nil {
		return nil, fieldError("y", err)
	}
	if atom.Z, err = strconv.ParseFloat(tcolumn(line, 46, 54), 64); err != nil {
		return nil, fieldError("z", err)
	}
	atom.Occupancy = 1.0 //a zero occupancy is also read as the default.
	if occ, err := strconv.ParseFloat(tcolumn(line, 54, 60), 64); err == nil && occ != 0 {
		atom.Occupancy = occ
	}
	if bfac, err := strconv.ParseFloat(tcolumn(line, 60, 66), 64); err == nil {
		atom.TempFactor = bfac
	}
	atom.Element = tcolumn(line, 76, 78)
	//If the element column is blank we take it from the atom name.
	if atom.Element == "" {
		atom.Element = tcolumn(line, 12, 14)
	}
	return atom, nil
}

//readRangeLine parses a HELIX or SHEET record.
func readRangeLine(line string, kind SSKind) (SecondaryStructure, error) {
	var err error
	ret := SecondaryStructure{Kind: kind}
	start, end := tcolumn(line, 21, 25), tcolumn(line, 33, 37)
	ret.ChainID = tcolumn(line, 19, 20)
	if kind == Sheet {
		start = tcolumn(line, 22, 26)
		ret.ChainID = tcolumn(line, 21, 22)
	}
	if ret.Start, err = strconv.Atoi(start); err != nil {
		return ret, fieldError("start residue", err)
	}
	if ret.End, err = strconv.Atoi(end); err != nil {
		return ret, fieldError("end residue", err)
	}
	return ret, nil
}

func fieldError(field string, err error) error {
	if nerr, ok := err.(*strconv.NumError); ok {
		return &PDBError{message: "can't read " + field + " from '" + nerr.Num + "'"}
	}
	return &PDBError{message: "can't read " + field}
}

// ValidationResult is the outcome of Validate. Err is nil when Valid is true.
type ValidationResult struct {
	Valid bool
	Err   *FormatError
}

//Validate checks that content is not blank and that it has at least one
//ATOM or HETATM record. Leading blanks before the record name are allowed.
//It does not panic and doesn't parse the records.
func Validate(content string) ValidationResult {
	if strings.TrimSpace(content) == "" {
		return ValidationResult{Err: newFormatError(EmptyContent, "Validate")}
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if hasPrefixFold(line, "ATOM") || hasPrefixFold(line, "HETATM") {
			return ValidationResult{Valid: true}
		}
	}
	return ValidationResult{Err: newFormatError(NoAtomRecords, "Validate")}
}

//ExtractProteinName returns the classification in the first HEADER record (columns 11-50),
//or, if there is no such record, the text of the first TITLE record. The name
//is lowercased. If neither record is present "unknown protein" is returned.
func ExtractProteinName(content string) string {
	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if hasPrefixFold(line, "HEADER") {
			if name := tcolumn(line, 10, 50); name != "" {
				return strings.ToLower(name)
			}
		}
	}
	for _, line := range lines {
		if hasPrefixFold(line, "TITLE") {
			if name := strings.TrimSpace(column(line, 10, len(line))); name != "" {
				return strings.ToLower(name)
			}
		}
	}
	return UnknownProtein
}
