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

package diag

import "testing"

func TestCollector(t *testing.T) {
	var c Collector
	c.Fatal("clock of %s is %d bits wide", "REG_1", 4)
	c.Severe("gated clock")
	c.Warn("width mismatch")
	c.Info("circuit stage failed")
	c.Info("again")

	td := []struct {
		level Level
		count int
	}{
		{Fatal, 1}, {Severe, 1}, {Warning, 1}, {Info, 2},
	}
	for _, each := range td {
		if got := c.Count(each.level); got != each.count {
			t.Errorf("%s: expecting %d entries, got %d", each.level, each.count, got)
		}
	}
	if !c.Has(Fatal, "REG_1 is 4 bits") {
		t.Errorf("message not formatted: %v", c.Entries)
	}
	if c.Has(Severe, "width") {
		t.Error("level must match")
	}
}

func TestForward(t *testing.T) {
	var src, dst Collector
	src.Fatal("a")
	src.Warn("b")
	src.Forward(&dst)
	if dst.Count(Fatal) != 1 || dst.Count(Warning) != 1 || len(dst.Entries) != 2 {
		t.Errorf("bad forward: %v", dst.Entries)
	}
}

func TestLogCounts(t *testing.T) {
	l := NewLog("jthdl test: ", false)
	l.Info("hidden")
	l.Severe("shown")
	if l.Count(Info) != 1 || l.Count(Severe) != 1 {
		t.Error("Log must count every entry, printed or not")
	}
}
