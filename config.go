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

import "bufio"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Pipeline parameters. LowComplexity is the threshold as supplied, i.e.
// calibrated for k = 16; Run() rescales it to the configured k.
type RunConfig struct {
  LowComplexity  float64
  SampleN        int
  SampleLength   int
  Threads        int
  KmerSize       int
  Limit          int
  Verbose        int
  Solid          int    // abundance threshold, 0 disables solid mode
  SkipEnd        bool
  ExactFile      string
  ForbiddenFile  string
  Output         string
}

func DefaultRunConfig() RunConfig {
  return RunConfig{
    LowComplexity: 1.5,
    SampleN      : 10000,
    SampleLength : 100,
    Threads      : 4,
    KmerSize     : 16,
    Limit        : 500,
    Verbose      : 1,
    Output       : "out.txt" }
}

/* -------------------------------------------------------------------------- */

// ReadConfig parses a flat configuration file: one key=value per line,
// `#' starts a comment line, spaces are stripped.
func ReadConfig(reader io.Reader) map[string]string {
  params  := make(map[string]string)
  scanner := bufio.NewScanner(reader)

  for scanner.Scan() {
    line := strings.ReplaceAll(scanner.Text(), " ", "")
    if len(line) == 0 || line[0] == '#' {
      continue
    }
    if i := strings.Index(line, "="); i >= 0 {
      params[line[0:i]] = line[i+1:]
    } else {
      params[line] = ""
    }
  }
  return params
}

func ImportConfig(filename string) (map[string]string, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  return ReadConfig(f), nil
}

/* -------------------------------------------------------------------------- */

// ApplyParams overrides configuration values from a parsed config file.
// The seen callback reports whether the equivalent option was given on
// the command line; such options always win over the file.
func (obj *RunConfig) ApplyParams(params map[string]string, seen func(key string) bool) error {

  setInt := func(key string, dst *int) error {
    if value, ok := params[key]; ok && !seen(key) {
      if v, err := strconv.Atoi(value); err != nil {
        return err
      } else {
        *dst = v
      }
    }
    return nil
  }
  setString := func(key string, dst *string) {
    if value, ok := params[key]; ok && !seen(key) {
      *dst = value
    }
  }
  if value, ok := params["lc"]; ok && !seen("lc") {
    if v, err := strconv.ParseFloat(value, 64); err != nil {
      return err
    } else {
      obj.LowComplexity = v
    }
  }
  if err := setInt("sn",    &obj.SampleN);      err != nil {
    return err
  }
  if err := setInt("sl",    &obj.SampleLength); err != nil {
    return err
  }
  if err := setInt("nt",    &obj.Threads);      err != nil {
    return err
  }
  if err := setInt("k",     &obj.KmerSize);     err != nil {
    return err
  }
  if err := setInt("lim",   &obj.Limit);        err != nil {
    return err
  }
  if err := setInt("v",     &obj.Verbose);      err != nil {
    return err
  }
  if err := setInt("solid", &obj.Solid);        err != nil {
    return err
  }
  if value, ok := params["skip_end"]; ok && !seen("skip_end") {
    if v, err := strconv.ParseBool(value); err != nil {
      return err
    } else {
      obj.SkipEnd = v
    }
  }
  setString("e",         &obj.ExactFile)
  setString("forbidden", &obj.ForbiddenFile)
  setString("o",         &obj.Output)

  return nil
}
