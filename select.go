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

import "sort"

/* -------------------------------------------------------------------------- */

type KmerCount struct {
  Kmer  uint64
  Count int
}

// Candidate k-mers ordered by descending count. Ties are broken by
// ascending encoded k-mer so that two runs over the same table produce
// the same list.
type CandidateList []KmerCount

/* -------------------------------------------------------------------------- */

func rankCounts(table KmerCountTable) CandidateList {
  list := make(CandidateList, 0, len(table))
  for kmer, count := range table {
    list = append(list, KmerCount{kmer, count})
  }
  sort.Slice(list, func(i, j int) bool {
    if list[i].Count != list[j].Count {
      return list[i].Count > list[j].Count
    }
    return list[i].Kmer < list[j].Kmer
  })
  return list
}

/* -------------------------------------------------------------------------- */

// MostFrequent returns the first limit entries of the table ranked by
// descending count, fewer if the table is smaller.
func MostFrequent(table KmerCountTable, limit int) CandidateList {
  list := rankCounts(table)
  if len(list) > limit {
    list = list[0:limit]
  }
  return list
}

// SolidKmers returns all entries with a count at or above the abundance
// threshold, ranked by descending count. Since the ranking is monotone
// this is the maximal prefix of the sorted table satisfying the
// threshold.
func SolidKmers(table KmerCountTable, threshold int) CandidateList {
  list := rankCounts(table)
  for i := 0; i < len(list); i++ {
    if list[i].Count < threshold {
      return list[0:i]
    }
  }
  return list
}
