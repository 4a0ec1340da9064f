package assistantService

import (
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"fmt"
)

func (s *assistantService) handleNavigation(englishText string) turnResult {
	prompt := nlp.StripAllPunctuation(englishText)

	destination, ok := nlp.ExtractDestination(prompt)
	if !ok {
		return turnResult{text: s.fromPool(locationNotFoundPool), category: entity.CategoryNavigation}
	}

	uri := s.utils.NavigationURI(destination)

	return turnResult{
		text:      fmt.Sprintf("Navigating to %s.", destination),
		category:  entity.CategoryNavigation,
		actionURI: uri,
		action: &entity.DeviceAction{
			Type:  entity.DeviceActionNavigate,
			URI:   uri,
			Label: destination,
		},
	}
}
