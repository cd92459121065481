package app

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stats summarizes the frames rendered by a session.
type Stats struct {
	Frames uint64
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration

	// LastLit is the number of foreground pixels in the most recent frame.
	LastLit int
	// Clipped counts out-of-bounds pixel writes across all frames.
	Clipped uint64
	Angle   float32
}

func (s *Stats) record(d time.Duration, lit int, clipped uint64, angle float32) {
	if s.Frames == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Frames++
	s.Total += d
	s.LastLit = lit
	s.Clipped += clipped
	s.Angle = angle
}

// Avg returns the mean step time.
func (s Stats) Avg() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

// WriteStats renders s as a table.
func WriteStats(w io.Writer, s Stats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Angle", "Lit pixels", "Clipped", "Min", "Avg", "Max"})
	table.Append([]string{
		fmt.Sprintf("%d", s.Frames),
		fmt.Sprintf("%.3f", s.Angle),
		fmt.Sprintf("%d", s.LastLit),
		fmt.Sprintf("%d", s.Clipped),
		s.Min.String(),
		s.Avg().String(),
		s.Max.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", s.Total.String()})
	table.Render()
}
