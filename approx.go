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

import "fmt"
import "sync/atomic"

import "github.com/pbenner/threadpool"

import "github.com/qbonenfant/adaptFinder/lib/progress"

/* -------------------------------------------------------------------------- */

// Maximum number of edits tolerated when re-counting candidate k-mers.
const MaxErrors = 2

/* -------------------------------------------------------------------------- */

// ErrorCount re-counts every candidate k-mer with up to MaxErrors edits.
// Candidates are swept in parallel; each worker keeps one boolean vector
// per error tier, sized to the sample, recording the reads where an
// occurrence realized exactly that many edits. A read occurring several
// times at the same tier is counted once, a k-mer is assumed not to recur
// within one fragment. A read matching at two different tiers contributes
// once per tier.
func ErrorCount(sample SampleSet, candidates CandidateList, index ApproxIndex, k, threads int, logger Logger) KmerCountTable {

  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)

  // one set of tier vectors per worker, reused across candidates
  tiers := make([][][]bool, pool.NumberOfThreads())
  for i := 0; i < pool.NumberOfThreads(); i++ {
    tiers[i] = make([][]bool, MaxErrors+1)
    for e := 0; e <= MaxErrors; e++ {
      tiers[i][e] = make([]bool, len(sample))
    }
  }
  // one result slot per candidate, no two jobs share a slot
  results := make([]int, len(candidates))
  done    := int64(0)
  bar     := progress.New(len(candidates), 100)

  logger.Printf(1, "Starting approximate counting")

  pool.RangeJob(0, len(candidates), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    tcount := tiers[pool.GetThreadId()]
    for e := 0; e <= MaxErrors; e++ {
      t := tcount[e]
      for j := 0; j < len(t); j++ {
        t[j] = false
      }
    }
    index.Query(DecodeKmer(candidates[i].Kmer, k), MaxErrors, func(readId, errors int) {
      tcount[errors][readId] = true
    })
    total := 0
    for e := 0; e <= MaxErrors; e++ {
      for _, hit := range tcount[e] {
        if hit {
          total += 1
        }
      }
    }
    results[i] = total

    if n := atomic.AddInt64(&done, 1); logger.Verbose >= 2 && logger.Writer != nil {
      fmt.Fprintf(logger.Writer, "%s", bar.Exec(int(n)))
    }
    return nil
  })

  count := make(KmerCountTable, len(candidates))
  for i := 0; i < len(candidates); i++ {
    count[candidates[i].Kmer] = results[i]
  }
  return count
}
