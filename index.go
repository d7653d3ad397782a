/* Copyright (C) 2020 Quentin Bonenfant
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package adaptfinder

/* -------------------------------------------------------------------------- */

// Approximate full-text search over one direction's sample. The callback
// receives one event per occurrence: the identifier of the read holding
// the occurrence and the number of edits the occurrence realized.
// Implementations must be read-only after construction so that multiple
// workers can query the same index without locking.
type ApproxIndex interface {
  Query(pattern []byte, maxErrors int, fn func(readId, errors int))
}

/* -------------------------------------------------------------------------- */

// Reference ApproxIndex implementation: a semi-global edit distance scan
// over every fragment. For each position where some alignment of the
// pattern ends with at most maxErrors edits, it reports the minimal edit
// count at that position. Fragments are short cuts of reads, so the
// quadratic scan stays cheap; a suffix array or FM-index drops in behind
// the same interface for larger inputs.
type EditDistanceIndex struct {
  fragments SampleSet
}

/* -------------------------------------------------------------------------- */

func NewEditDistanceIndex(sample SampleSet) *EditDistanceIndex {
  return &EditDistanceIndex{sample}
}

/* -------------------------------------------------------------------------- */

func (obj *EditDistanceIndex) Query(pattern []byte, maxErrors int, fn func(readId, errors int)) {
  for id, seq := range obj.fragments {
    searchFragment(id, seq, pattern, maxErrors, fn)
  }
}

/* -------------------------------------------------------------------------- */

// Dynamic program over one fragment. Row i holds the best edit count of
// pattern[0:i] against any substring of the text ending at the current
// column, i.e. matches may start anywhere for free.
func searchFragment(id int, text, pattern []byte, maxErrors int, fn func(readId, errors int)) {
  m := len(pattern)
  if m == 0 {
    return
  }
  prev := make([]int, m+1)
  cur  := make([]int, m+1)
  for i := 0; i <= m; i++ {
    prev[i] = i
  }
  for j := 1; j <= len(text); j++ {
    cur[0] = 0
    for i := 1; i <= m; i++ {
      d := prev[i-1]
      if pattern[i-1] != text[j-1] {
        d += 1
      }
      d = iMin(d, prev[i]+1)
      d = iMin(d, cur [i-1]+1)
      cur[i] = d
    }
    if cur[m] <= maxErrors {
      fn(id, cur[m])
    }
    prev, cur = cur, prev
  }
}
