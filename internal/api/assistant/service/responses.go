package assistantService

// Response pools. Every failure and confirmation class has several phrasings
// so the assistant does not repeat itself; the picker chooses one per turn.

var permissionContactsCallPool = []string{
	"I need permission to access your contacts and make phone call. Please allow and try again.",
	"I can't reach your contacts yet. Please grant contacts and phone permission and try again.",
	"To place a call I need access to your contacts and dialer. Allow the permissions and ask me again.",
	"Phone and contacts permission is missing. Enable it and I'll make the call.",
	"I'm not allowed to touch your contacts or dialer yet. Please allow access first.",
	"Calling needs contacts and phone permission. Grant them and try once more.",
}

var permissionLocationPool = []string{
	"I need permission to access your location. Please allow and try again.",
	"Location permission is missing. Enable it and ask me again.",
	"I can't see where you are without location access. Please allow it first.",
	"To do that I need your location. Grant the permission and retry.",
	"Please allow location access so I can help with that.",
	"Location access is off for me. Turn it on and try again.",
}

var locationServiceOffPool = []string{
	"Your location service seems to be off. Please turn it on and try again.",
	"I can't get a fix because location is disabled. Switch it on and retry.",
	"Location services are off. Enable them and ask me again.",
	"Turn on your location service first, then I can help with that.",
	"GPS looks disabled. Please enable location and try once more.",
	"I need location services on for that. Turn them on and retry.",
}

var callFailedPool = []string{
	"I could not place the call, please try again.",
	"Something stopped the call from going through. Try again.",
	"The call didn't work out. Please try once more.",
	"I failed to start the call, sorry. Try again in a moment.",
	"Couldn't dial just now. Please retry.",
	"The call could not be placed. Give it another try.",
}

var contactNotFoundPool = []string{
	"I cannot find such contact, please try again.",
	"No contact by that name showed up. Try saying it differently.",
	"I looked, but that contact isn't in your list.",
	"That name doesn't match anyone in your contacts.",
	"I couldn't match that to any saved contact, sorry.",
	"No luck finding that contact. Maybe check the name?",
}

var songNotFoundPool = []string{
	"I can not find such song, please try again.",
	"That song didn't turn up anywhere. Try another title.",
	"No results for that one. Maybe try the artist name too?",
	"I couldn't find that track, sorry.",
	"That tune is hiding from me. Try a different name.",
	"Nothing came up for that song. Give it another go.",
}

var locationNotFoundPool = []string{
	"I could not find that place, please try again.",
	"That destination didn't come up. Try being more specific.",
	"No such place found. Maybe say the full name?",
	"I couldn't locate that, sorry. Try again.",
	"That place isn't showing up on the map for me.",
	"I looked but couldn't find where that is. Try once more.",
}

var weatherReportUnavailablePool = []string{
	"I could not get the weather report right now, please try again.",
	"The forecast isn't loading for me. Try again shortly.",
	"Weather data is unavailable at the moment, sorry.",
	"I couldn't fetch the forecast just now. Please retry.",
	"No weather report came through. Try again in a bit.",
	"The weather service isn't answering me right now.",
}

var locationUnknownSuggestCityPool = []string{
	"I am not sure where you are. Try asking with a city name, like the weather in London.",
	"I couldn't tell your location. Ask me about a specific city instead.",
	"Without your location I can't guess. Name a city and I'll check the weather there.",
	"Try adding a city name, for example how is the weather in Paris.",
	"I don't know where you are right now. Mention a city and I'll look it up.",
	"Tell me which city you mean and I'll get the forecast.",
}

var invalidTimePool = []string{
	"That doesn't look like a valid time, please try again.",
	"I couldn't read a time out of that. Say something like 6:30 PM.",
	"Hmm, that time didn't make sense to me. Try again?",
	"I need a clearer time, like 7 AM or in 20 minutes.",
	"Sorry, I didn't catch a valid time there. One more time?",
	"That time didn't parse. Try saying it differently.",
}

var alarmSetSuccessPool = []string{
	"Alarm set successfully.",
	"Done, your alarm is set.",
	"All set, I've scheduled the alarm.",
	"Your alarm is ready to go.",
	"Alarm scheduled. Sleep easy.",
	"Got it, the alarm is set.",
}

var reminderSetSuccessPool = []string{
	"Reminder set successfully.",
	"Done, I'll remind you.",
	"All set, reminder scheduled.",
	"Your reminder is in place.",
	"Got it, I won't let you forget.",
	"Reminder saved. Consider it handled.",
}

var promptForTimePool = []string{
	"Sure, at what time?",
	"Okay, when should I set it for?",
	"Happy to. What time?",
	"Alright, tell me the time.",
	"Sure thing. For when?",
	"Can do. At what time exactly?",
}

var navigationNotSupportedPool = []string{
	"Sorry, I can't finish that navigation request yet.",
	"Following up on directions isn't something I can do yet.",
	"I can't continue that navigation flow, sorry. Try asking again in full.",
	"That navigation follow-up isn't supported yet. Ask me the whole route in one go.",
	"I lost the thread on that navigation request. Please ask again with the destination.",
	"Navigation follow-ups aren't ready yet. Say the full request and I'll route you.",
}

var genericErrorPool = []string{
	"Something went wrong, please try again.",
	"That didn't work, sorry. Try once more.",
	"I hit a snag there. Please retry.",
	"An error got in the way. Try again?",
	"Something broke on my end. Give it another shot.",
	"That failed unexpectedly. Please try again.",
}

func (s *assistantService) fromPool(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.pick(len(pool))]
}
