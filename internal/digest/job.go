// Package digest implements the recurring patient status email job: for
// every patient with family caregivers it joins the latest vitals and the
// latest doctor comment into a plain-text digest and mails it to each family
// member, tolerating individual send failures.
package digest

import (
	"github.com/rs/zerolog"

	"caretrack-server/internal/models"
)

// Store is the read contract the job needs. Latest* methods return
// (nil, nil) when the patient has no matching record.
type Store interface {
	// ResolvedPatientLinks returns all link aggregates with the patient and
	// every linked user resolved to at least name and email.
	ResolvedPatientLinks() ([]models.PatientLink, error)
	// LatestVitals returns the most recent vitals reading for a patient.
	LatestVitals(patientID string) (*models.Vitals, error)
	// LatestComment returns the most recent doctor comment for a patient,
	// with the authoring staff user resolved.
	LatestComment(patientID string) (*models.DoctorComment, error)
}

// Mailer sends a single plain-text email. A call may fail independently of
// any other.
type Mailer interface {
	Send(to, subject, body string) error
}

// Summary is the outcome of one job run.
type Summary struct {
	Sent   int
	Failed int
}

// Job is one stateless digest pass. Every run re-derives everything from
// current store contents; there is no last-sent marker.
type Job struct {
	store  Store
	mailer Mailer
	log    zerolog.Logger
}

// NewJob creates a new digest Job.
func NewJob(store Store, mailer Mailer, log zerolog.Logger) *Job {
	return &Job{store: store, mailer: mailer, log: log}
}

// Run executes one digest pass. A failed send is counted and logged without
// aborting the remaining sends; a store failure aborts the pass and returns
// the counts accumulated so far.
func (j *Job) Run() (Summary, error) {
	j.log.Info().Msg("patient digest job started")

	var summary Summary

	aggregates, err := j.store.ResolvedPatientLinks()
	if err != nil {
		return summary, err
	}
	if len(aggregates) == 0 {
		j.log.Info().Msg("no patient links found, skipping")
		return summary, nil
	}

	for _, agg := range aggregates {
		patient := agg.Patient
		if patient.Name == "" {
			// Dangling patient reference, skip the whole aggregate.
			j.log.Warn().Str("patientLinkId", agg.ID).Msg("skipping aggregate: patient not found")
			continue
		}

		family := agg.FamilyEntries()
		if len(family) == 0 {
			continue
		}

		vitals, err := j.store.LatestVitals(agg.PatientID)
		if err != nil {
			return summary, err
		}
		if vitals == nil {
			j.log.Info().Str("patient", patient.Name).Msg("skipping patient: no vitals recorded")
			continue
		}

		comment, err := j.store.LatestComment(agg.PatientID)
		if err != nil {
			return summary, err
		}

		subject := Subject(patient.Name)
		body := BuildBody(patient.Name, vitals, comment)

		for _, entry := range family {
			recipient := entry.LinkedUser
			if recipient.Email == "" {
				j.log.Warn().Str("linkEntryId", entry.ID).Msg("skipping link: family user not found or has no email")
				continue
			}

			if err := j.mailer.Send(recipient.Email, subject, body); err != nil {
				summary.Failed++
				j.log.Error().Err(err).Str("to", recipient.Email).Msg("failed to send digest email")
				continue
			}
			summary.Sent++
		}
	}

	j.log.Info().Int("sent", summary.Sent).Int("failed", summary.Failed).Msg("patient digest job completed")
	return summary, nil
}
