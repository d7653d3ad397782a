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
import "io"
import "os"
import "time"

/* -------------------------------------------------------------------------- */

// Leveled diagnostics with an elapsed-time stamp. The start instant is an
// explicit field rather than process-global state so that tests can
// inject a fixed clock and a capture writer.
type Logger struct {
  Start   time.Time
  Verbose int
  Writer  io.Writer
}

/* -------------------------------------------------------------------------- */

func NewLogger(verbose int) Logger {
  return Logger{time.Now(), verbose, os.Stderr}
}

/* -------------------------------------------------------------------------- */

func (obj Logger) Printf(level int, format string, args ...interface{}) {
  if obj.Verbose < level || obj.Writer == nil {
    return
  }
  elapsed := float64(time.Since(obj.Start))/float64(time.Millisecond)
  fmt.Fprintf(obj.Writer, "[%.2f ms]\t", elapsed)
  fmt.Fprintf(obj.Writer, format, args...)
  fmt.Fprintf(obj.Writer, "\n")
}

// Warningf reports a recoverable condition. Warnings never interrupt the
// pipeline, they only surface on the diagnostic stream.
func (obj Logger) Warningf(format string, args ...interface{}) {
  if obj.Verbose < 1 || obj.Writer == nil {
    return
  }
  fmt.Fprintf(obj.Writer, "/!\\ WARNING: ")
  fmt.Fprintf(obj.Writer, format, args...)
  fmt.Fprintf(obj.Writer, "\n")
}
