package domain

import "github.com/google/uuid"

// SkippedListing records one detail fetch that was skipped, with the
// reason it failed. Skips never abort a run.
type SkippedListing struct {
	Slug   ListingSlug
	Reason string
}

// AcquisitionReport is the terminal summary of one acquisition run.
type AcquisitionReport struct {
	RunID           uuid.UUID
	SlugsDiscovered int
	DetailsFetched  int
	NewListings     int
	Skipped         []SkippedListing
}
