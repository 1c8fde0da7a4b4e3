package transform

// Deliberate rumination prompts. Distinct from intrusive rumination,
// which perpetuates distress, deliberate rumination is purposeful,
// time-bounded, and meaning-seeking.

var presencePrompts = []string{
	"What did this patient teach you about being with suffering?",
	"What would you do differently in how you showed up?",
	"What did their presence reveal about your own capacity for presence?",
}

var communicationPrompts = []string{
	"What words mattered most to the family?",
	"What did you wish you had said? What are you glad you said?",
	"What did their silence or their questions teach you?",
}

var compassionPrompts = []string{
	"How did this experience change your capacity for connection?",
	"What about this loss keeps you human?",
	"What would it mean to honor their memory through your practice?",
}

var perspectivePrompts = []string{
	"What does this loss illuminate about what matters?",
	"How does this patient's life inform how you want to live yours?",
	"What would they want you to take forward from knowing them?",
}

var resiliencePrompts = []string{
	"What helped you continue after this loss?",
	"What resources, internal or external, did you draw on?",
	"What would you tell another physician facing similar loss?",
}

var servicePrompts = []string{
	"What can you offer others because of what you learned here?",
	"How does this grief equip you to serve others in grief?",
	"What wisdom could be shared without betraying the sacred?",
}

// Prompts returns the deliberate rumination prompts for a wisdom
// type. Unknown types fall back to perspective prompts.
func Prompts(wt WisdomType) []string {
	switch wt {
	case WisdomPresence:
		return presencePrompts
	case WisdomCommunication:
		return communicationPrompts
	case WisdomCompassion:
		return compassionPrompts
	case WisdomPerspective:
		return perspectivePrompts
	case WisdomResilience:
		return resiliencePrompts
	case WisdomService:
		return servicePrompts
	default:
		return perspectivePrompts
	}
}
