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

import "bytes"
import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func TestComplexityHomopolymer(test *testing.T) {
  for _, k := range []int{4, 8, 16, 32} {
    kmer, err := EncodeKmer(bytes.Repeat([]byte("A"), k))
    if err != nil {
      test.Fatal(err)
    }
    threshold := AdjustComplexityThreshold(1.5, 16, k)
    if !LowComplexity(kmer, k, threshold) {
      test.Error("test failed")
    }
    if !LowComplexity(kmer, k, 0.0) {
      test.Error("test failed")
    }
  }
}

func TestComplexityAdapter(test *testing.T) {
  // a realistic adapter uses mostly distinct dinucleotides
  kmer, err := EncodeKmer([]byte("AATGTACTTCGTTCAG"))
  if err != nil {
    test.Fatal(err)
  }
  if LowComplexity(kmer, 16, 1.5) {
    test.Error("test failed")
  }
}

func TestComplexityPeriodic(test *testing.T) {
  // four dinucleotides over 15 windows score exactly 1.5, the filter
  // boundary is inclusive
  kmer, err := EncodeKmer([]byte("ACGTACGTACGTACGT"))
  if err != nil {
    test.Fatal(err)
  }
  if !LowComplexity(kmer, 16, 1.5) {
    test.Error("test failed")
  }
  if LowComplexity(kmer, 16, 1.6) {
    test.Error("test failed")
  }
}

func TestComplexityAdjust(test *testing.T) {
  r := AdjustComplexityThreshold(1.5, 16, 32)
  if math.Abs(r - 1.5*31.0*31.0/(15.0*15.0)) > 1e-12 {
    test.Error("test failed")
  }
  if AdjustComplexityThreshold(1.5, 16, 16) != 1.5 {
    test.Error("test failed")
  }
}
