// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"fmt"
	"sort"
)

// Location is the byte range [Start, End) a node was parsed from.
type Location struct {
	Start, End int
}

// Loc returns the location of a node.
func (l Location) Loc() Location {
	return l
}

// FileInfo contains information about the contents of a source file,
// for converting byte offsets into line and column positions.
type FileInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data []byte
	// The offsets for each line in the file. The value is the zero-based byte
	// offset for a given line. The line is given by its index. So the value at
	// index 0 is the offset for the first line (which is always zero).
	lines []int
}

// NewFileInfo creates a new FileInfo for the given file and contents,
// indexing the start of every line.
func NewFileInfo(filename string, contents []byte) *FileInfo {
	lines := []int{0}
	for i, b := range contents {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: lines,
	}
}

// Name returns the name of the source file.
func (f *FileInfo) Name() string {
	return f.name
}

// Data returns the contents of the source file.
func (f *FileInfo) Data() []byte {
	return f.data
}

// LineCount returns the number of lines in the file.
func (f *FileInfo) LineCount() int {
	return len(f.lines)
}

// SourcePos returns the position of the given byte offset.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	offset = max(0, min(offset, len(f.data)))
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	// Columns count runes, not bytes.
	col := len([]rune(string(f.data[f.lines[lineNumber-1]:offset])))

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		// Columns are 1-indexed.
		Col: col + 1,
	}
}

// SourcePos identifies a location in a source file.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

// UnknownPos is a placeholder position when only the source file
// name is known.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename}
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}
