package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/fourbar/kinematics"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"theta2", "theta3", "theta4", "branch"}

// WriteCSV writes one row per sample, angles in degrees.
func WriteCSV(w io.Writer, prof kinematics.MotionProfile) error {
	if prof.Len() == 0 {
		return ErrEmptyProfile
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("render: write csv: %w", err)
	}
	for _, s := range prof.Samples() {
		row := []string{
			strconv.FormatFloat(s.Theta2, 'f', -1, 64),
			strconv.FormatFloat(s.Theta3, 'f', 6, 64),
			strconv.FormatFloat(s.Theta4, 'f', 6, 64),
			s.Branch.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("render: write csv: %w", err)
	}

	return nil
}
