package assistantService

import (
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) handleCall(ctx context.Context, userID, englishText string) turnResult {
	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return turnResult{text: s.fromPool(genericErrorPool), category: entity.CategoryCall}
	}

	contacts, err := repo.Contacts.GetContactsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to load contacts for call")
		return turnResult{text: s.fromPool(callFailedPool), category: entity.CategoryCall}
	}

	if len(contacts) == 0 {
		return turnResult{text: s.fromPool(permissionContactsCallPool), category: entity.CategoryCall}
	}

	prompt := nlp.StripAllPunctuation(englishText)
	query := nlp.CleanContactQuery(prompt)

	names := make([]string, len(contacts))
	for i, contact := range contacts {
		names[i] = contact.Name
	}

	idx, ok := nlp.MatchContact(query, names)
	if !ok {
		return turnResult{text: s.fromPool(contactNotFoundPool), category: entity.CategoryCall}
	}

	contact := contacts[idx]
	uri := s.utils.TelURI(contact.Number)

	return turnResult{
		text:      fmt.Sprintf("Calling %s.", contact.Name),
		category:  entity.CategoryCall,
		actionURI: uri,
		action: &entity.DeviceAction{
			Type:  entity.DeviceActionCall,
			URI:   uri,
			Label: contact.Name,
		},
	}
}
