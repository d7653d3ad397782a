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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "math/rand"
import   "os"
import   "strconv"
import   "time"

import   "github.com/pborman/getopt"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/qbonenfant/adaptFinder"

/* -------------------------------------------------------------------------- */

// config file keys and the command line option shadowing each of them
var cliNames = map[string]string{
  "lc"       : "low-complexity",
  "sn"       : "sample-n",
  "sl"       : "sample-length",
  "nt"       : "threads",
  "k"        : "kmer-size",
  "lim"      : "limit",
  "v"        : "verbose",
  "e"        : "exact-file",
  "o"        : "output",
  "forbidden": "forbidden",
  "solid"    : "solid",
  "skip_end" : "skip-end" }

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config RunConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importReads(config RunConfig, filename string) ReadSet {
  reads := ReadSet{}
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := reads.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return reads
}

func importForbidden(config RunConfig) ForbiddenKmerSet {
  if config.ForbiddenFile == "" {
    return nil
  }
  PrintStderr(config, 1, "Reading forbidden kmers `%s'... ", config.ForbiddenFile)
  set, err := ImportForbiddenKmers(config.ForbiddenFile, config.KmerSize)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return set
}

/* -------------------------------------------------------------------------- */

func saveCountPlot(config RunConfig, filename string, counts CandidateList) {
  xy := plotter.XYs{}
  for i := 0; i < len(counts); i++ {
    // log scale, zero counts cannot be drawn
    if counts[i].Count > 0 {
      xy = append(xy, plotter.XY{X: float64(i+1), Y: float64(counts[i].Count)})
    }
  }
  if len(xy) == 0 {
    return
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "rank"
  p.Y.Label.Text = "corrected count"
  p.X.Scale = plot.LogScale{}
  p.Y.Scale = plot.LogScale{}
  p.X.Tick.Marker = plot.LogTicks{}
  p.Y.Tick.Marker = plot.LogTicks{}

  if err := plotutil.AddLines(p, xy); err != nil {
    panic(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    panic(err)
  }
  PrintStderr(config, 1, "Wrote count plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func printParameters(config RunConfig) {
  PrintStderr(config, 1, "Kmer size:             %d\n", config.KmerSize)
  PrintStderr(config, 1, "Sampled sequences:     %d\n", config.SampleN)
  PrintStderr(config, 1, "Sampling length:       %d\n", config.SampleLength)
  PrintStderr(config, 1, "Number of kept kmer:   %d\n", config.Limit)
  PrintStderr(config, 1, "LC filter threshold:   %v\n", config.LowComplexity)
  PrintStderr(config, 1, "Nb thread:             %d\n", config.Threads)
  PrintStderr(config, 1, "Verbosity level:       %d\n", config.Verbose)
  if config.Solid > 0 {
    PrintStderr(config, 1, "Solid threshold:       %d\n", config.Solid)
  }
  if config.SkipEnd {
    PrintStderr(config, 1, "Skipping end adapter\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)
  start := time.Now()

  config  := DefaultRunConfig()
  options := getopt.New()

  optLowComplexity := options. StringLong("low-complexity", 'c', "1.5",      "low complexity filter threshold (for k=16) [default: 1.5]")
  optSampleN       := options.    IntLong("sample-n",       'n', 10000,      "sample n sequences from dataset [default: 10000]")
  optSampleLength  := options.    IntLong("sample-length",  'l', 100,        "size of the sampled portion [default: 100]")
  optThreads       := options.    IntLong("threads",        't', 4,          "number of threads [default: 4]")
  optKmerSize      := options.    IntLong("kmer-size",      'k', 16,         "size of the kmers, between 2 and 32 [default: 16]")
  optLimit         := options.    IntLong("limit",           0 , 500,        "number of kmers kept after initial counting [default: 500]")
  optExactFile     := options. StringLong("exact-file",     'e', "",         "path to export the exact k-mer count, if needed")
  optConfig        := options. StringLong("config",          0 , "",         "path to a key=value config file")
  optForbidden     := options. StringLong("forbidden",      'f', "",         "path to a file of k-mers excluded from counting")
  optSolid         := options.    IntLong("solid",          's', 0,          "keep all k-mers with at least this abundance instead of the most frequent ones")
  optSkipEnd       := options.   BoolLong("skip-end",        0 ,             "only search the start of the reads")
  optOutput        := options. StringLong("output",         'o', "out.txt",  "path to the output file [default: out.txt]")
  optPlot          := options.   BoolLong("plot",            0 ,             "write a rank/count plot of the corrected counts per direction")
  optVerbose       := options.CounterLong("verbose",        'v',             "verbose level [-v or -vv]")
  optHelp          := options.   BoolLong("help",           'h',             "print help")

  options.SetParameters("<INPUT.fasta>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if lc, err := strconv.ParseFloat(*optLowComplexity, 64); err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  } else {
    config.LowComplexity = lc
  }
  config.SampleN       = *optSampleN
  config.SampleLength  = *optSampleLength
  config.Threads       = *optThreads
  config.KmerSize      = *optKmerSize
  config.Limit         = *optLimit
  config.Solid         = *optSolid
  config.SkipEnd       = *optSkipEnd
  config.ExactFile     = *optExactFile
  config.ForbiddenFile = *optForbidden
  config.Output        = *optOutput
  if options.Lookup("verbose").Seen() {
    config.Verbose = *optVerbose
  }
  // values from the config file never override explicit options
  if *optConfig != "" {
    params, err := ImportConfig(*optConfig)
    if err != nil {
      log.Fatal(err)
    }
    seen := func(key string) bool {
      return options.Lookup(cliNames[key]).Seen()
    }
    if err := config.ApplyParams(params, seen); err != nil {
      log.Fatal(err)
    }
  }
  // solid mode counts against the default sample size
  if config.Solid > 0 && config.SampleN != DefaultRunConfig().SampleN {
    PrintStderr(config, 1, "solid mode ignores the requested sample size\n")
    config.SampleN = DefaultRunConfig().SampleN
  }
  printParameters(config)

  reads     := importReads(config, options.Args()[0])
  forbidden := importForbidden(config)
  logger    := Logger{Start: start, Verbose: config.Verbose, Writer: os.Stderr}
  rng       := rand.New(rand.NewSource(time.Now().UnixNano()))

  results, err := Run(reads, config, forbidden, nil, rng, logger)
  if err != nil {
    log.Fatal(err)
  }
  if *optPlot {
    for _, r := range results {
      saveCountPlot(config, fmt.Sprintf("%s.%s.pdf", config.Output, r.Direction), r.Counts)
    }
  }
}
