package models

// GlobalSettingsID is the fixed id of the singleton settings document.
const GlobalSettingsID = "global_settings"

// GlobalSettings holds the music played before and after accepting,
// shared across every category.
type GlobalSettings struct {
	ID                string `json:"id" bson:"id"`
	BeforeAcceptMusic string `json:"before_accept_music,omitempty" bson:"before_accept_music,omitempty"`
	AfterAcceptMusic  string `json:"after_accept_music,omitempty" bson:"after_accept_music,omitempty"`
}

type GlobalSettingsUpdate struct {
	BeforeAcceptMusic *string `json:"before_accept_music,omitempty"`
	AfterAcceptMusic  *string `json:"after_accept_music,omitempty"`
}

func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{ID: GlobalSettingsID}
}
