package onboarding

import (
	"petalflow/models"
)

// CollapseArrangementUpdates deduplicates a batch by (arrangementId, section)
// so only the latest change per pair survives. Order of distinct pairs is
// preserved from their first appearance.
func CollapseArrangementUpdates(updates []models.ArrangementUpdate) []models.ArrangementUpdate {
	index := make(map[string]int, len(updates))
	out := make([]models.ArrangementUpdate, 0, len(updates))
	for _, u := range updates {
		key := u.ArrangementID + "|" + u.Section
		if i, ok := index[key]; ok {
			out[i] = u
			continue
		}
		index[key] = len(out)
		out = append(out, u)
	}
	return out
}

// eventForAutoSave resolves the session's event id, refusing targets whose
// backing id is not known yet.
func (s *DefaultOnboardingService) eventForAutoSave(sessionID string) (int64, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return 0, err
	}
	if session.EventID == nil {
		return 0, NewNavigationError("auto-save is unavailable until the inquiry is created")
	}
	return *session.EventID, nil
}

// QueueColorSave debounces the event's color selections. Successive calls
// within the window replace each other; only the latest set is written.
func (s *DefaultOnboardingService) QueueColorSave(sessionID string, colorScheme string, selectedColors map[string][]string) error {
	eventID, err := s.eventForAutoSave(sessionID)
	if err != nil {
		return err
	}

	coord := s.autosave.getOrCreate(targetKey(eventID, TargetColors), func() *saveCoordinator {
		return newSaveCoordinator(s.autoSaveWindow(), func(value any) error {
			return s.Events.UpsertColors(value.(*models.EventColors))
		}, nil)
	})

	coord.submit(&models.EventColors{
		EventID:        eventID,
		ColorScheme:    colorScheme,
		SelectedColors: selectedColors,
	})
	return nil
}

// QueueArrangementSave debounces arrangement quantity changes. Batches
// arriving within the window are collapsed by (arrangementId, section), so a
// rapid up-down-up on one quantity flushes as a single latest value.
func (s *DefaultOnboardingService) QueueArrangementSave(sessionID string, updates []models.ArrangementUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	eventID, err := s.eventForAutoSave(sessionID)
	if err != nil {
		return err
	}

	coord := s.autosave.getOrCreate(targetKey(eventID, TargetArrangements), func() *saveCoordinator {
		return newSaveCoordinator(s.autoSaveWindow(), func(value any) error {
			return s.Events.ApplyArrangementUpdates(eventID, value.([]models.ArrangementUpdate))
		}, func(prev, next any) any {
			merged := append(prev.([]models.ArrangementUpdate), next.([]models.ArrangementUpdate)...)
			return CollapseArrangementUpdates(merged)
		})
	})

	coord.submit(CollapseArrangementUpdates(updates))
	return nil
}

// SaveStatus reports per-target auto-save state for the session's event.
// Sessions without an event yet have nothing to report.
func (s *DefaultOnboardingService) SaveStatus(sessionID string) (map[string]SaveStatus, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.EventID == nil {
		return map[string]SaveStatus{}, nil
	}
	return s.autosave.statuses(*session.EventID), nil
}
