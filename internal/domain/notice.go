package domain

// Action names a page control whose behavior is not implemented yet
type Action string

const (
	ActionSearch         Action = "search"
	ActionGlobalSearch   Action = "globalSearch"
	ActionAIChat         Action = "aiChat"
	ActionGetStarted     Action = "getStarted"
	ActionSignIn         Action = "signIn"
	ActionLearnMore      Action = "learnMore"
	ActionDoc            Action = "doc"
	ActionAPI            Action = "api"
	ActionOrbInteraction Action = "orbInteraction"
	ActionNavLink        Action = "navLink"
)

// Notice is the user-visible placeholder shown for an unimplemented action
type Notice struct {
	Action      Action
	Message     string
	Description string
}

var notices = map[Action]Notice{
	ActionSearch:         {ActionSearch, "Search functionality to be implemented", "Implement global search functionality"},
	ActionGlobalSearch:   {ActionGlobalSearch, "Global search functionality to be implemented", "Implement site-wide content search functionality"},
	ActionAIChat:         {ActionAIChat, "AI model chat functionality to be implemented", "Implement AI model chat functionality"},
	ActionGetStarted:     {ActionGetStarted, "Get started functionality to be implemented", "Implement user onboarding flow"},
	ActionSignIn:         {ActionSignIn, "Sign in functionality to be implemented", "Implement user authentication login"},
	ActionLearnMore:      {ActionLearnMore, "Learn more functionality to be implemented", "Implement product introduction page"},
	ActionDoc:            {ActionDoc, "Documentation functionality to be implemented", "Implement documentation viewing functionality"},
	ActionAPI:            {ActionAPI, "API functionality to be implemented", "Implement API documentation functionality"},
	ActionOrbInteraction: {ActionOrbInteraction, "Orb interaction functionality to be implemented", "Implement Orb 3D interaction functionality"},
	ActionNavLink:        {ActionNavLink, "Navigation functionality to be implemented", "Implement page routing for navigation links"},
}

// NoticeFor returns the placeholder notice for an action. Unknown actions
// get a generic message rather than an error.
func NoticeFor(a Action) Notice {
	if n, ok := notices[a]; ok {
		return n
	}
	return Notice{Action: a, Message: "Functionality to be implemented"}
}
