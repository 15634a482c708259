/*  This file is part of JT_FRAME.
    JTFRAME program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    JTFRAME program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with JTFRAME.  If not, see <http://www.gnu.org/licenses/>.

    Author: Jose Tejada Gomez. Twitter: @topapate
    Date: 19-10-2026 */

// Package diag collects the diagnostics produced while generating HDL.
// Generators never stop at the first problem: they report it and carry on
// with a safe substitute so a single run shows every issue of a design.
package diag

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level int

const (
	Info Level = iota
	Warning
	Severe
	Fatal
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Severe:
		return "severe warning"
	case Fatal:
		return "fatal error"
	}
	return "unknown"
}

// Reporter is the sink every generator writes its diagnostics to.
type Reporter interface {
	Fatal(format string, a ...interface{})
	Severe(format string, a ...interface{})
	Warn(format string, a ...interface{})
	Info(format string, a ...interface{})
}

type Entry struct {
	Level   Level
	Message string
}

func (e Entry) String() string {
	return e.Level.String() + ": " + e.Message
}

// counts keeps the per-level totals shared by both reporters
type counts [Fatal + 1]int

func (c *counts) Count(l Level) int { return c[l] }

// Log prints every diagnostic through a log.Logger. Info messages are
// only shown in verbose mode.
type Log struct {
	counts
	Verbose bool
	out     *log.Logger
}

func NewLog(prefix string, verbose bool) *Log {
	return &Log{
		Verbose: verbose,
		out:     log.New(os.Stderr, prefix, 0),
	}
}

func (l *Log) put(level Level, format string, a []interface{}) {
	l.counts[level]++
	if level == Info && !l.Verbose {
		return
	}
	msg := fmt.Sprintf(format, a...)
	if level == Info {
		l.out.Println(msg)
		return
	}
	l.out.Printf("%s: %s", strings.ToUpper(level.String()), msg)
}

func (l *Log) Fatal(format string, a ...interface{})  { l.put(Fatal, format, a) }
func (l *Log) Severe(format string, a ...interface{}) { l.put(Severe, format, a) }
func (l *Log) Warn(format string, a ...interface{})   { l.put(Warning, format, a) }
func (l *Log) Info(format string, a ...interface{})   { l.put(Info, format, a) }

// Collector keeps the diagnostics in memory. Used by tests and by the
// check command to print a summary at the end.
type Collector struct {
	counts
	Entries []Entry
}

func (c *Collector) put(level Level, format string, a []interface{}) {
	c.counts[level]++
	c.Entries = append(c.Entries, Entry{level, fmt.Sprintf(format, a...)})
}

func (c *Collector) Fatal(format string, a ...interface{})  { c.put(Fatal, format, a) }
func (c *Collector) Severe(format string, a ...interface{}) { c.put(Severe, format, a) }
func (c *Collector) Warn(format string, a ...interface{})   { c.put(Warning, format, a) }
func (c *Collector) Info(format string, a ...interface{})   { c.put(Info, format, a) }

// Has reports whether an entry of the given level contains text
func (c *Collector) Has(level Level, text string) bool {
	for _, each := range c.Entries {
		if each.Level == level && strings.Contains(each.Message, text) {
			return true
		}
	}
	return false
}

// Forward replays the collected entries into another reporter
func (c *Collector) Forward(r Reporter) {
	for _, each := range c.Entries {
		switch each.Level {
		case Fatal:
			r.Fatal("%s", each.Message)
		case Severe:
			r.Severe("%s", each.Message)
		case Warning:
			r.Warn("%s", each.Message)
		default:
			r.Info("%s", each.Message)
		}
	}
}
