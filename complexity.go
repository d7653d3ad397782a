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

// LowComplexity computes a DUST-style statistic over the 16 dinucleotide
// counts of an encoded k-mer and reports whether the k-mer should be
// filtered out. Homopolymers and short tandem repeats use few distinct
// dinucleotides and score high.
func LowComplexity(kmer uint64, k int, threshold float64) bool {
  counts := [16]int{}
  // slide a two-symbol window across the encoded k-mer
  for i := 0; i < k-1; i++ {
    counts[kmer & 15]++
    kmer >>= 2
  }
  sum := 0
  for _, v := range counts {
    sum += v*(v-1)
  }
  s := float64(sum) / float64(2*(k-2))
  return s >= threshold
}

// AdjustComplexityThreshold rescales a threshold calibrated for one k-mer
// size to another. The score grows with the square of the window count,
// hence the quadratic factor.
func AdjustComplexityThreshold(threshold float64, kOld, kNew int) float64 {
  r := float64(kNew-1)/float64(kOld-1)
  return threshold*r*r
}
