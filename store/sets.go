package store

import "github.com/yterada/ballpark/models"

// Sets bundles the working sets for every dataset the API serves.
type Sets struct {
	Savant          *WorkingSet[models.PitchEvent]
	RapsodoPitching *WorkingSet[models.RapsodoPitch]
	RapsodoBatting  *WorkingSet[models.RapsodoSwing]
	Blast           *WorkingSet[models.BlastSwing]
}

// NewSets returns an empty set per dataset.
func NewSets() *Sets {
	return &Sets{
		Savant:          NewWorkingSet[models.PitchEvent](),
		RapsodoPitching: NewWorkingSet[models.RapsodoPitch](),
		RapsodoBatting:  NewWorkingSet[models.RapsodoSwing](),
		Blast:           NewWorkingSet[models.BlastSwing](),
	}
}

// History returns the file history for one dataset.
func (s *Sets) History(d Dataset) []FileHistoryEntry {
	switch d {
	case DatasetSavant:
		return s.Savant.History()
	case DatasetRapsodoPitching:
		return s.RapsodoPitching.History()
	case DatasetRapsodoBatting:
		return s.RapsodoBatting.History()
	case DatasetBlast:
		return s.Blast.History()
	}
	return nil
}

// RemoveUpload drops an upload batch from one dataset's working set.
func (s *Sets) RemoveUpload(d Dataset, uploadID string) {
	switch d {
	case DatasetSavant:
		s.Savant.RemoveUpload(uploadID)
	case DatasetRapsodoPitching:
		s.RapsodoPitching.RemoveUpload(uploadID)
	case DatasetRapsodoBatting:
		s.RapsodoBatting.RemoveUpload(uploadID)
	case DatasetBlast:
		s.Blast.RemoveUpload(uploadID)
	}
}
