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
import "math/rand"

/* -------------------------------------------------------------------------- */

// Corrected candidate counts for one search direction.
type DirectionResult struct {
  Direction string
  Counts    CandidateList
}

// Builds the approximate search index over one direction's sample.
type IndexBuilder func(sample SampleSet) ApproxIndex

/* -------------------------------------------------------------------------- */

// Run executes the discovery pipeline on the start of the reads and,
// unless disabled, on their ends. A nil index builder selects the bundled
// edit distance index. Any error aborts the run; the direction that
// failed has not written its output file.
func Run(reads ReadSet, config RunConfig, forbidden ForbiddenKmerSet, build IndexBuilder, rng *rand.Rand, logger Logger) ([]DirectionResult, error) {

  if config.KmerSize < MinKmerSize || config.KmerSize > MaxKmerSize {
    return nil, fmt.Errorf("Run(): kmer size must be between %d and %d (included)", MinKmerSize, MaxKmerSize)
  }
  if build == nil {
    build = func(sample SampleSet) ApproxIndex {
      return NewEditDistanceIndex(sample)
    }
  }
  // the threshold is calibrated for k=16
  lc := AdjustComplexityThreshold(config.LowComplexity, 16, config.KmerSize)
  logger.Printf(1, "Adjusted LC threshold: %v", lc)

  directions := []string{"start"}
  if !config.SkipEnd {
    directions = append(directions, "end")
  }
  results := []DirectionResult{}

  for _, direction := range directions {
    r, err := runDirection(reads, config, lc, forbidden, build, direction, rng, logger)
    if err != nil {
      return nil, err
    }
    results = append(results, r)
  }
  return results, nil
}

/* -------------------------------------------------------------------------- */

func runDirection(reads ReadSet, config RunConfig, lc float64, forbidden ForbiddenKmerSet, build IndexBuilder, direction string, rng *rand.Rand, logger Logger) (DirectionResult, error) {
  result := DirectionResult{Direction: direction}
  k      := config.KmerSize

  logger.Printf(1, "Working on %s adapter", direction)

  sample := SampleReads(reads, config.SampleN, config.SampleLength, direction == "end", rng, logger)

  logger.Printf(1, "Exact k-mer count")
  count := CountKmers(sample, k, lc, forbidden)
  logger.Printf(1, "Number of kmer found: %d", len(count))

  var candidates CandidateList
  if config.Solid > 0 {
    candidates = SolidKmers(count, config.Solid)
  } else {
    candidates = MostFrequent(count, config.Limit)
  }
  logger.Printf(1, "Number of kmer kept:  %d", len(candidates))
  if len(candidates) == 0 {
    logger.Warningf("No k-mer passed the filters for the %s direction", direction)
  }

  if config.ExactFile != "" {
    logger.Printf(1, "Exporting exact kmer count")
    if err := ExportCounts(candidates, k, config.ExactFile+"."+direction); err != nil {
      return result, err
    }
  }

  logger.Printf(1, "Preparing index")
  index := build(sample)

  logger.Printf(1, "Approximate k-mer count")
  corrected := ErrorCount(sample, candidates, index, k, config.Threads, logger)
  final     := MostFrequent(corrected, config.Limit)

  logger.Printf(1, "Exporting approximate count")
  if err := ExportCounts(final, k, config.Output+"."+direction); err != nil {
    return result, err
  }
  // an adapter should show up in nearly every read of its direction
  if len(final) > 0 && float64(final[0].Count) < 0.1*float64(len(sample)) {
    logger.Warningf("The most frequent kmer has been found in less than 10%% of the reads (%d/%d)", final[0].Count, len(sample))
    logger.Warningf("It could mean this file is already trimmed or the sample do not contains detectable adapters.")
  }
  logger.Printf(1, "Done")

  result.Counts = final
  return result, nil
}
