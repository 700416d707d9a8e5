package digest

import (
	"fmt"
	"strings"

	"caretrack-server/internal/models"
)

const trailer = "This is an automated message from the Healthcare System."

// Subject returns the email subject line for a patient digest.
func Subject(patientName string) string {
	return "Hourly Status Update: " + patientName
}

func formatVitals(v *models.Vitals) string {
	return strings.Join([]string{
		fmt.Sprintf("  Heart Rate:      %d bpm", v.HeartRate),
		fmt.Sprintf("  Blood Pressure:  %d/%d mmHg", v.Systolic, v.Diastolic),
		fmt.Sprintf("  Temperature:     %g °F", v.Temperature),
		fmt.Sprintf("  Oxygen Level:    %g%%", v.OxygenLevel),
		fmt.Sprintf("  Weight:          %g lbs", v.Weight),
		fmt.Sprintf("  Recorded At:     %s", v.RecordedAt.Format("Jan 2, 2006 3:04 PM")),
	}, "\n")
}

// BuildBody renders the plain-text digest for one patient: latest vitals
// block, then the latest doctor comment or a placeholder when none exists.
// The output is deterministic for a given input.
func BuildBody(patientName string, vitals *models.Vitals, comment *models.DoctorComment) string {
	var lines []string

	lines = append(lines, "Patient Status Update for "+patientName)
	lines = append(lines, strings.Repeat("=", 45))
	lines = append(lines, "")
	lines = append(lines, "Latest Vitals:")
	lines = append(lines, formatVitals(vitals))
	lines = append(lines, "")

	if comment != nil {
		doctorName := comment.Staff.Name
		if doctorName == "" {
			doctorName = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("Latest Doctor Comment (by %s):", doctorName))
		lines = append(lines, fmt.Sprintf("  %q", comment.Comment))
	} else {
		lines = append(lines, "Latest Doctor Comment: No comments yet.")
	}

	lines = append(lines, "")
	lines = append(lines, "---")
	lines = append(lines, trailer)

	return strings.Join(lines, "\n")
}
