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

import "testing"

/* -------------------------------------------------------------------------- */

func queryMinErrors(index ApproxIndex, pattern string, maxErrors int) map[int]int {
  best := make(map[int]int)
  index.Query([]byte(pattern), maxErrors, func(readId, errors int) {
    if e, ok := best[readId]; !ok || errors < e {
      best[readId] = errors
    }
  })
  return best
}

/* -------------------------------------------------------------------------- */

func TestIndexExactMatch(test *testing.T) {
  index := NewEditDistanceIndex(SampleSet{
    []byte("TTTTACGTTTTT"),
    []byte("AAAAAAAA")})

  best := queryMinErrors(index, "ACGT", 2)
  if e, ok := best[0]; !ok || e != 0 {
    test.Error("test failed")
  }
  // the second fragment is three edits away from any occurrence
  if _, ok := best[1]; ok {
    test.Error("test failed")
  }
}

func TestIndexSubstitution(test *testing.T) {
  index := NewEditDistanceIndex(SampleSet{[]byte("TTTTACCTTTTT")})

  best := queryMinErrors(index, "ACGT", 2)
  if e, ok := best[0]; !ok || e != 1 {
    test.Error("test failed")
  }
}

func TestIndexErrorBound(test *testing.T) {
  index := NewEditDistanceIndex(SampleSet{
    []byte("TTTTACGTTTTT"),
    []byte("GGGGGGGG")})

  index.Query([]byte("ACGT"), 2, func(readId, errors int) {
    if errors < 0 || errors > 2 {
      test.Error("test failed")
    }
  })
}

func TestIndexConcurrentQueries(test *testing.T) {
  index := NewEditDistanceIndex(SampleSet{[]byte("TTTTACGTTTTT")})

  done := make(chan bool)
  for i := 0; i < 4; i++ {
    go func() {
      for j := 0; j < 100; j++ {
        index.Query([]byte("ACGT"), 2, func(readId, errors int) {})
      }
      done <- true
    }()
  }
  for i := 0; i < 4; i++ {
    <-done
  }
}
