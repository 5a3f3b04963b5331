package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/appengine-ltd/runecast/internal/store"
)

// Stats is everything the stats command prints.
type Stats struct {
	Summary store.Summary
	Runes   []store.RuneCount
	Failed  []store.FailedGesture
	Spells  []store.SpellCount
}

func WriteStats(w io.Writer, st Stats, now time.Time, opts Options) error {
	sum := st.Summary
	last := "never"
	if !sum.LastActivity.IsZero() {
		last = humanize.RelTime(sum.LastActivity, now, "ago", "from now")
	}
	if _, err := fmt.Fprintf(w, "%s sessions, %s gestures (%s recognised), %s casts (%s successful), last active %s\n\n",
		humanize.Comma(int64(sum.Sessions)),
		humanize.Comma(int64(sum.Gestures)),
		percent(sum.Gestures-sum.Failed, sum.Gestures),
		humanize.Comma(int64(sum.Casts)),
		percent(sum.Successful, sum.Casts),
		last,
	); err != nil {
		return err
	}

	if len(st.Runes) > 0 {
		rows := make([][]string, len(st.Runes))
		for i, rc := range st.Runes {
			rows[i] = []string{rc.Rune, strconv.Itoa(rc.Count)}
		}
		if err := writeTable(w, opts, "Runes", []string{"RUNE", "COUNT"}, rows, map[int]bool{1: true}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if len(st.Spells) > 0 {
		rows := make([][]string, len(st.Spells))
		for i, sc := range st.Spells {
			rows[i] = []string{sc.Spell, strconv.Itoa(sc.Casts), percent(sc.OK, sc.Casts)}
		}
		if err := writeTable(w, opts, "Casts", []string{"SPELL", "CASTS", "OK"}, rows, map[int]bool{1: true, 2: true}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if len(st.Failed) > 0 {
		rows := make([][]string, len(st.Failed))
		for i, fg := range st.Failed {
			digits := fg.Digits
			if digits == "" {
				digits = "(empty)"
			}
			rows[i] = []string{digits, strconv.Itoa(fg.Count), humanize.RelTime(fg.LastSeen, now, "ago", "from now")}
		}
		if err := writeTable(w, opts, "Unrecognised gestures", []string{"DIGITS", "COUNT", "LAST SEEN"}, rows, map[int]bool{1: true}); err != nil {
			return err
		}
	}
	return nil
}

func percent(part, total int) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", 100*float64(part)/float64(total))
}
