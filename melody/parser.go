// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package melody

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/testfmtx/hardware/tuning"
)

// the reference pitch of the transmitter is C5. pitches in melody files are
// stored as offsets from this note
const referenceOctave = 5

var noteOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

var durationCodes = map[string]uint8{
	"16": tuning.Dur16th,
	"8":  tuning.Dur8th,
	"4":  tuning.DurQuarter,
	"2":  tuning.DurHalf,
	"1":  tuning.DurWhole,
	"8.": tuning.DurDotted8th,
}

// parseNote converts a single field like "C5", "D#5/4" or "R/8" into a note
// word. the duration suffix is optional and defaults to an 8th note
func parseNote(s string) (tuning.Note, error) {
	dur := tuning.Dur8th

	if name, suffix, ok := strings.Cut(s, "/"); ok {
		d, found := durationCodes[suffix]
		if !found {
			return 0, fmt.Errorf("unrecognised duration: %s", s)
		}
		dur = d
		s = name
	}

	if s == "R" {
		return tuning.NewRest(dur), nil
	}

	if len(s) == 0 {
		return 0, fmt.Errorf("empty note")
	}

	pitch, ok := noteOffsets[s[0]]
	if !ok {
		return 0, fmt.Errorf("unrecognised note: %s", s)
	}
	s = s[1:]

	if strings.HasPrefix(s, "#") {
		pitch++
		s = s[1:]
	} else if strings.HasPrefix(s, "b") {
		pitch--
		s = s[1:]
	}

	octave := referenceOctave
	if len(s) > 0 {
		var err error
		octave, err = strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("unrecognised octave: %s", err)
		}
	}

	pitch += (octave - referenceOctave) * 12
	if pitch < -127 || pitch > 127 {
		return 0, fmt.Errorf("pitch out of range: %s", s)
	}

	return tuning.NewNote(int8(pitch), dur), nil
}

// Parse a whitespace separated list of notes into a melody. lines beginning
// with a semi-colon are comments
func Parse(s string) (Melody, error) {
	var mel Melody

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ";") {
			continue
		}
		for _, f := range strings.Fields(line) {
			n, err := parseNote(strings.ToUpper(f[:1]) + f[1:])
			if err != nil {
				return nil, fmt.Errorf("melody: %w", err)
			}
			mel = append(mel, n)
		}
	}

	if len(mel) == 0 {
		return nil, fmt.Errorf("melody: no notes")
	}

	return mel, nil
}

// Load a melody from file. see Parse() for the format
func Load(filename string) (Melody, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("melody: %w", err)
	}
	return Parse(string(b))
}
